package services

import "testing"

func TestResolveEntitlement(t *testing.T) {
	tests := []struct {
		name         string
		isAdmin      bool
		isEnrolled   bool
		chapterTitle string
		want         string
	}{
		{"admin sees locked chapter", true, false, "Advanced Hypertrophy", EntitlementUnlocked},
		{"admin sees free chapter", true, false, "Introduction", EntitlementUnlocked},
		{"admin overrides enrollment", true, true, "Week 6 Program", EntitlementUnlocked},
		{"enrolled user sees any chapter", false, true, "Advanced Hypertrophy", EntitlementUnlocked},
		{"enrolled user sees free chapter", false, true, "Free Preview", EntitlementUnlocked},
		{"anonymous sees intro chapter", false, false, "Intro to Training", EntitlementUnlocked},
		{"anonymous sees introduction chapter", false, false, "Course Introduction", EntitlementUnlocked},
		{"anonymous sees free chapter", false, false, "FREE Sample Workout", EntitlementUnlocked},
		{"anonymous sees preview chapter", false, false, "Program Preview", EntitlementUnlocked},
		{"case insensitive marker", false, false, "INTRODUCTION AND BASICS", EntitlementUnlocked},
		{"marker inside word still matches", false, false, "Previews of what's coming", EntitlementUnlocked},
		{"anonymous locked out of paid chapter", false, false, "Week 1: Foundations", EntitlementLocked},
		{"empty title is locked", false, false, "", EntitlementLocked},
		{"near miss marker is locked", false, false, "Intr0 to Training", EntitlementLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveEntitlement(tt.isAdmin, tt.isEnrolled, tt.chapterTitle)
			if got != tt.want {
				t.Errorf("ResolveEntitlement(%v, %v, %q) = %q, want %q",
					tt.isAdmin, tt.isEnrolled, tt.chapterTitle, got, tt.want)
			}
		})
	}
}

func TestIsFreeChapterTitle(t *testing.T) {
	free := []string{"Intro", "introduction", "Free Preview", "PREVIEW", "A free taste", "Module Intro: Basics"}
	for _, title := range free {
		if !IsFreeChapterTitle(title) {
			t.Errorf("IsFreeChapterTitle(%q) = false, want true", title)
		}
	}

	paid := []string{"Week 1", "Strength Block", "", "Fr ee", "Advanced"}
	for _, title := range paid {
		if IsFreeChapterTitle(title) {
			t.Errorf("IsFreeChapterTitle(%q) = true, want false", title)
		}
	}
}
