package services

import "strings"

// Entitlement results for a (user, chapter) pair
const (
	EntitlementUnlocked = "UNLOCKED"
	EntitlementLocked   = "LOCKED"
)

// Chapters whose title contains one of these markers are free previews.
var freeChapterMarkers = []string{"intro", "introduction", "free", "preview"}

// IsFreeChapterTitle reports whether a chapter title marks a free preview
// chapter. The same rule sets Chapter.IsFree at write time so the stored flag
// and the resolver can never disagree.
func IsFreeChapterTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range freeChapterMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ResolveEntitlement decides whether chapter content is viewable. This is the
// single gating function for every screen: batch content, batch detail and the
// dashboard all call it with the same three inputs.
//
// Priority order, first match wins:
//  1. admins see everything
//  2. a paid enrollment unlocks the whole batch
//  3. free-preview chapters are open to everyone
//  4. otherwise locked
func ResolveEntitlement(isAdmin, isEnrolled bool, chapterTitle string) string {
	if isAdmin {
		return EntitlementUnlocked
	}
	if isEnrolled {
		return EntitlementUnlocked
	}
	if IsFreeChapterTitle(chapterTitle) {
		return EntitlementUnlocked
	}
	return EntitlementLocked
}
