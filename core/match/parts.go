package match

import (
	"strings"

	"github.com/kilianp07/maintdispatch/core/model"
)

// PartState is the result state of a part search.
type PartState int

const (
	PartNoMatch PartState = iota
	PartFound
	PartOutOfStock
)

// String returns a human-readable representation of the state.
func (s PartState) String() string {
	switch s {
	case PartFound:
		return "found"
	case PartOutOfStock:
		return "out_of_stock"
	case PartNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// PartMatch is the outcome of a catalog search. Part and KeywordHits are only
// meaningful when State is PartFound or PartOutOfStock.
type PartMatch struct {
	State       PartState
	Part        model.Part
	KeywordHits int
}

// FindPart searches the catalog for the part best matching the free-text
// issue description. A part matches when any of its keywords occurs in the
// lowercased description; matching is deliberately permissive since the
// description is free text. Ties are broken by keyword hit count, then by
// applicability to the requesting machine type, then by lowest ID. Stock is
// checked only after selection: the best match with quantity zero yields
// PartOutOfStock, never a fallback to a worse match.
func FindPart(issueDescription, machineType string, catalog []model.Part) PartMatch {
	desc := strings.ToLower(issueDescription)
	best := PartMatch{State: PartNoMatch}
	for _, p := range catalog {
		hits := keywordHits(desc, p.Keywords)
		if hits == 0 {
			continue
		}
		if best.State == PartNoMatch || betterPart(p, hits, best, machineType) {
			best = PartMatch{State: PartFound, Part: p, KeywordHits: hits}
		}
	}
	if best.State == PartFound && !best.Part.InStock() {
		best.State = PartOutOfStock
	}
	return best
}

func keywordHits(lowerDesc string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowerDesc, strings.ToLower(kw)) {
			hits++
		}
	}
	return hits
}

// betterPart reports whether candidate p with the given hit count outranks
// the current best match.
func betterPart(p model.Part, hits int, best PartMatch, machineType string) bool {
	if hits != best.KeywordHits {
		return hits > best.KeywordHits
	}
	pApplies, bestApplies := p.AppliesTo(machineType), best.Part.AppliesTo(machineType)
	if pApplies != bestApplies {
		return pApplies
	}
	return p.ID < best.Part.ID
}
