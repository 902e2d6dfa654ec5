// Package synergy holds the curated essence synergy knowledge base and
// the set-scoring algebra over it.
package synergy

import "fmt"

// Info describes one synergy set found in an essence collection.
type Info struct {
	Essences    []string `json:"pair"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
}

// key is an unordered 1- or 2-essence lookup key. Solo entries leave b
// empty; pairs are stored with a <= b.
type key struct {
	a, b string
}

func pairKey(a, b string) key {
	if b < a {
		a, b = b, a
	}
	return key{a, b}
}

var (
	pairInfo   map[key]Info
	setScores  map[key]int
	soloScores map[string]int
)

func init() {
	pairInfo = make(map[key]Info, len(pairTable))
	setScores = make(map[key]int, len(pairTable)+len(soloTable))
	soloScores = make(map[string]int, len(soloTable))

	for _, p := range pairTable {
		k := pairKey(p.a, p.b)
		pairInfo[k] = Info{Essences: []string{p.a, p.b}, Score: p.score, Description: p.desc}
		setScores[k] = p.score
	}
	for _, s := range soloTable {
		soloScores[s.name] = s.score
		setScores[key{a: s.name}] = s.score
	}
}

// ForPair looks up the synergy entry for a pair of essences,
// independent of argument order.
func ForPair(a, b string) (Info, bool) {
	info, ok := pairInfo[pairKey(a, b)]
	return info, ok
}

// PairScore returns the synergy score for a pair, or 0 when the pair is
// not in the table.
func PairScore(a, b string) int {
	info, _ := ForPair(a, b)
	return info.Score
}

// SoloScore returns the standalone score for an essence, or 0.
func SoloScore(name string) int {
	return soloScores[name]
}

// ScoreEssenceSet sums the score of every known synergy set fully
// contained in the given essences. Contributions overlap: three mutually
// synergizing essences accrue all of their pairwise scores plus any solo
// scores.
func ScoreEssenceSet(essences []string) int {
	if len(essences) == 0 {
		return 0
	}
	set := make(map[string]bool, len(essences))
	for _, e := range essences {
		set[e] = true
	}

	total := 0
	for k, score := range setScores {
		if set[k.a] && (k.b == "" || set[k.b]) {
			total += score
		}
	}
	return total
}

// FindAllInSet returns every synergy set contained in the given essences,
// pairs first in table order, then solo entries with a generated
// description. Intended for display alongside ScoreEssenceSet.
func FindAllInSet(essences []string) []Info {
	set := make(map[string]bool, len(essences))
	for _, e := range essences {
		set[e] = true
	}

	var found []Info
	for _, p := range pairTable {
		if set[p.a] && set[p.b] {
			found = append(found, Info{
				Essences:    []string{p.a, p.b},
				Score:       p.score,
				Description: p.desc,
			})
		}
	}
	for _, s := range soloTable {
		if set[s.name] {
			found = append(found, Info{
				Essences:    []string{s.name},
				Score:       s.score,
				Description: fmt.Sprintf("%s provides standalone value", s.name),
			})
		}
	}
	return found
}

// Categories returns the category names in canonical order.
func Categories() []string {
	return categoryOrder
}

// CategoriesForTypes returns the categories whose tag lists intersect the
// given synergy types.
func CategoriesForTypes(types []string) []string {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}

	var matched []string
	for _, cat := range categoryOrder {
		for _, t := range categoryTypes[cat] {
			if set[t] {
				matched = append(matched, cat)
				break
			}
		}
	}
	return matched
}

// TypesForCategory returns the synergy-type tags grouped under a
// category, or nil for an unknown category.
func TypesForCategory(category string) []string {
	return categoryTypes[category]
}
