package service

import (
	"strings"

	"resume-filter/internal/domain"
)

// ParseKeywords splits a comma-separated keyword string, trimming each entry
// and dropping empties. Order is preserved.
func ParseKeywords(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.ErrNoKeywordsProvided
	}

	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil, domain.ErrInvalidKeywords
	}
	return keywords, nil
}

// MatchesAny reports whether any keyword occurs in text, ignoring case.
// Plain substring containment: no word boundaries, no normalization beyond lowercasing.
func MatchesAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
