package utils

import "testing"

func TestExtractVideoEmbed(t *testing.T) {
	tests := []struct {
		name         string
		rawURL       string
		wantProvider string
		wantID       string
		wantOK       bool
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", VideoProviderYouTube, "dQw4w9WgXcQ", true},
		{"youtube watch no www", "https://youtube.com/watch?v=abc123", VideoProviderYouTube, "abc123", true},
		{"youtube mobile", "https://m.youtube.com/watch?v=abc123", VideoProviderYouTube, "abc123", true},
		{"youtube embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", VideoProviderYouTube, "dQw4w9WgXcQ", true},
		{"youtube shorts", "https://youtube.com/shorts/xyz789", VideoProviderYouTube, "xyz789", true},
		{"youtu.be short link", "https://youtu.be/dQw4w9WgXcQ", VideoProviderYouTube, "dQw4w9WgXcQ", true},
		{"youtu.be with params", "https://youtu.be/dQw4w9WgXcQ?t=42", VideoProviderYouTube, "dQw4w9WgXcQ", true},
		{"vimeo plain", "https://vimeo.com/123456789", VideoProviderVimeo, "123456789", true},
		{"vimeo player", "https://player.vimeo.com/video/123456789", VideoProviderVimeo, "123456789", true},
		{"vimeo with www", "https://www.vimeo.com/987654321", VideoProviderVimeo, "987654321", true},
		{"watch without v param", "https://www.youtube.com/watch?list=PL123", VideoProviderUnsupported, "", false},
		{"bare youtube channel", "https://www.youtube.com/c/somechannel", VideoProviderUnsupported, "", false},
		{"vimeo without numeric id", "https://vimeo.com/about", VideoProviderUnsupported, "", false},
		{"unknown host", "https://example.com/video/123", VideoProviderUnsupported, "", false},
		{"not a url", "just some text", VideoProviderUnsupported, "", false},
		{"empty string", "", VideoProviderUnsupported, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, videoID, ok := ExtractVideoEmbed(tt.rawURL)
			if provider != tt.wantProvider || videoID != tt.wantID || ok != tt.wantOK {
				t.Errorf("ExtractVideoEmbed(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.rawURL, provider, videoID, ok, tt.wantProvider, tt.wantID, tt.wantOK)
			}
		})
	}
}
