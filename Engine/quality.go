package Engine

import (
	"strings"
)

// QualitySet marks tasks whose completion a manager is expected to verify.
// Membership is by normalized title because the upstream schema has no
// category field on templates; the title strings are the contract.
type QualitySet struct {
	titles map[string]bool
}

// Curated titles of the operationally critical tasks. Matching is fragile by
// nature; keep these in sync with the template titles used in production.
var defaultQualityTitles = []string{
	"opening checklist",
	"closing checklist",
	"cash register reconciliation",
	"temperature log check",
	"stock expiry check",
}

// NormalizeTitle lowercases and collapses whitespace so cosmetic edits to a
// template title do not change quality classification.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

func NewQualitySet(titles []string) QualitySet {
	set := QualitySet{titles: make(map[string]bool, len(titles))}
	for _, title := range titles {
		set.titles[NormalizeTitle(title)] = true
	}
	return set
}

func DefaultQualitySet() QualitySet {
	return NewQualitySet(defaultQualityTitles)
}

// Contains reports whether the title belongs to the curated quality set.
func (s QualitySet) Contains(title string) bool {
	if s.titles == nil {
		return false
	}
	return s.titles[NormalizeTitle(title)]
}
