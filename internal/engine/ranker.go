package engine

import (
	"sort"
	"strings"
	"time"
)

// Eligible reports whether listing may be shown to forUser at now: not
// their own, not hidden, not expired and not sold.
func Eligible(forUser string, l Listing, now time.Time) bool {
	return l.OwnerID != forUser &&
		l.Status(now) == ListingActive &&
		l.Availability != Sold
}

// Rank orders candidates by how many of their tags appear in interestTags
// (case-insensitive). Zero-overlap listings stay in the result, last.
// Ties keep input order, and with no interest tags the order is untouched.
// Ineligible candidates are dropped.
func Rank(forUser string, interestTags []string, candidates []Listing, now time.Time) []Listing {
	out := make([]Listing, 0, len(candidates))
	for _, l := range candidates {
		if Eligible(forUser, l, now) {
			out = append(out, l)
		}
	}

	interests := normalizeTags(interestTags)
	if len(interests) == 0 {
		return out
	}

	scores := make(map[string]int, len(out))
	for _, l := range out {
		scores[l.ID] = overlap(l.Tags, interests)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].ID] > scores[out[j].ID]
	})
	return out
}

func normalizeTags(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

// overlap counts distinct listing tags present in interests.
func overlap(tags []string, interests map[string]struct{}) int {
	n := 0
	for t := range normalizeTags(tags) {
		if _, ok := interests[t]; ok {
			n++
		}
	}
	return n
}
