package utils

import (
	"net/url"
	"strings"
)

// Video providers recognized by the player layer
const (
	VideoProviderYouTube     = "youtube"
	VideoProviderVimeo       = "vimeo"
	VideoProviderUnsupported = "unsupported"
)

// ExtractVideoEmbed pulls a canonical video ID out of the URL shapes the
// player knows how to render. Unknown shapes degrade to "unsupported" so a bad
// reference renders as "cannot display", never a crash.
func ExtractVideoEmbed(rawURL string) (provider string, videoID string, ok bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return VideoProviderUnsupported, "", false
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	path := strings.Trim(parsed.Path, "/")

	switch host {
	case "youtube.com", "m.youtube.com":
		// youtube.com/watch?v=ID
		if path == "watch" {
			if id := parsed.Query().Get("v"); id != "" {
				return VideoProviderYouTube, id, true
			}
			return VideoProviderUnsupported, "", false
		}
		// youtube.com/embed/ID and youtube.com/shorts/ID
		for _, prefix := range []string{"embed/", "shorts/"} {
			if strings.HasPrefix(path, prefix) {
				if id := strings.SplitN(strings.TrimPrefix(path, prefix), "/", 2)[0]; id != "" {
					return VideoProviderYouTube, id, true
				}
			}
		}
		return VideoProviderUnsupported, "", false

	case "youtu.be":
		// youtu.be/ID
		if id := strings.SplitN(path, "/", 2)[0]; id != "" {
			return VideoProviderYouTube, id, true
		}
		return VideoProviderUnsupported, "", false

	case "vimeo.com", "player.vimeo.com":
		// vimeo.com/123456789 and player.vimeo.com/video/123456789
		segments := strings.Split(path, "/")
		for _, segment := range segments {
			if segment != "" && isDigits(segment) {
				return VideoProviderVimeo, segment, true
			}
		}
		return VideoProviderUnsupported, "", false
	}

	return VideoProviderUnsupported, "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
