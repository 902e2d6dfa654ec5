// Package score composes the unified build-quality score and the raw
// weighted synergy metric used for ranking.
package score

import (
	"fmt"
	"strings"

	"github.com/quillfox/dreambuild/internal/archetype"
	"github.com/quillfox/dreambuild/internal/catalog"
	"github.com/quillfox/dreambuild/internal/model"
	"github.com/quillfox/dreambuild/internal/synergy"
	"github.com/quillfox/dreambuild/internal/validate"
)

// synergyDivisor normalizes the raw subset-sum score into the capped
// synergy component: a raw score of 120+ earns the full 40 points. The
// ranking metric deliberately does not use this scale.
const synergyDivisor = 120

// Engine evaluates builds against the catalog and the synergy table.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine returns an Engine over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Breakdown is the unified 0-100 score with its four capped components.
type Breakdown struct {
	Total        int            `json:"total"`
	Synergy      int            `json:"synergy"`
	Rarity       int            `json:"rarity"`
	Validity     int            `json:"validity"`
	Completeness int            `json:"completeness"`
	RawSynergy   int            `json:"raw_synergy_score"`
	Details      []synergy.Info `json:"synergy_details"`
}

// UnifiedScore computes the four-part build quality score. The synergy
// component covers active-memory essences only; rarity counts passives
// too.
func (e *Engine) UnifiedScore(b *model.Build) (*Breakdown, error) {
	active := setToSlice(b.ActiveEssenceSet())
	rawSynergy := synergy.ScoreEssenceSet(active)
	synergyComponent := rawSynergy * 40 / synergyDivisor
	if synergyComponent > 40 {
		synergyComponent = 40
	}

	counts, err := e.cat.CountRarity(b)
	if err != nil {
		return nil, err
	}
	rarityComponent := counts[model.RarityLegendary]*5 +
		counts[model.RarityEpic]*2 +
		counts[model.RarityUnique]*3
	if rarityComponent > 20 {
		rarityComponent = 20
	}

	validityComponent := 0
	if validate.NoDuplicateEssences(b).Valid {
		validityComponent = 20
	}

	completeness := 0
	if len(b.Memories) > 0 {
		completeness += 5
	}
	if b.HasTree() {
		completeness += 5
	}
	if b.Strategy != "" {
		completeness += 4
	}
	if len(b.Strengths) > 0 {
		completeness += 3
	}
	if len(b.Weaknesses) > 0 {
		completeness += 3
	}

	return &Breakdown{
		Total:        synergyComponent + rarityComponent + validityComponent + completeness,
		Synergy:      synergyComponent,
		Rarity:       rarityComponent,
		Validity:     validityComponent,
		Completeness: completeness,
		RawSynergy:   rawSynergy,
		Details:      synergy.FindAllInSet(active),
	}, nil
}

// Grade maps a unified score to its letter grade. Thresholds partition
// the whole 0-100 range; first match wins.
func Grade(total int) string {
	switch {
	case total >= 90:
		return "S"
	case total >= 80:
		return "A"
	case total >= 65:
		return "B"
	case total >= 50:
		return "C"
	case total >= 35:
		return "D"
	}
	return "F"
}

// Complexity classifies how many systems a build leans on. This is a
// separate axis from the quality score.
func Complexity(b *model.Build) string {
	points := len(b.Memories) + len(b.ActiveEssences())/3
	if len(b.PassiveEssences) > 0 {
		points++
	}
	if b.HasTree() {
		points++
	}
	switch {
	case points >= 8:
		return "High"
	case points >= 5:
		return "Medium"
	}
	return "Low"
}

// WeightedSynergy is the uncapped ranking metric: the raw subset-sum
// over active essences, plus half the pair score for every registered
// (passive, active) pair. It deliberately double-counts against the
// full-set algebra and is never normalized.
func WeightedSynergy(b *model.Build) int {
	activeSet := b.ActiveEssenceSet()
	total := synergy.ScoreEssenceSet(setToSlice(activeSet))

	for _, passive := range dedupe(b.PassiveNames()) {
		for active := range activeSet {
			if s := synergy.PairScore(passive, active); s > 0 {
				total += s / 2
			}
		}
	}
	return total
}

// SynergyDetails returns the display breakdown for a build's active
// essences.
func SynergyDetails(b *model.Build) []synergy.Info {
	return synergy.FindAllInSet(setToSlice(b.ActiveEssenceSet()))
}

// Scorecard is the full evaluation of one named build.
type Scorecard struct {
	Character    string     `json:"character"`
	Build        string     `json:"build"`
	Score        *Breakdown `json:"score"`
	Grade        string     `json:"grade"`
	Archetypes   []string   `json:"archetypes"`
	Improvements []string   `json:"improvements"`
	EssenceCount int        `json:"essence_count"`
	MemoryCount  int        `json:"memory_count"`
}

// Scorecard evaluates the first build whose name contains buildName
// (case-insensitive), in catalog order. A missing character or build
// yields (nil, nil).
func (e *Engine) Scorecard(character, buildName string) (*Scorecard, error) {
	var target *model.Build
	needle := strings.ToLower(buildName)
	for _, b := range e.cat.BuildsFor(character) {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			target = b
			break
		}
	}
	if target == nil {
		return nil, nil
	}

	breakdown, err := e.UnifiedScore(target)
	if err != nil {
		return nil, err
	}
	dup := validate.NoDuplicateEssences(target)

	var improvements []string
	if !dup.Valid {
		improvements = append(improvements,
			fmt.Sprintf("Fix duplicate essences: %s", strings.Join(dup.Duplicates, ", ")))
	}
	if breakdown.Synergy < 20 {
		improvements = append(improvements,
			"Low synergy score - consider swapping essences for known synergy pairs")
	}
	if breakdown.Rarity < 10 {
		improvements = append(improvements,
			"Few high-rarity essences - try incorporating Legendary/Epic essences")
	}
	if !target.HasTree() {
		improvements = append(improvements, "Missing constellation tree configuration")
	}

	return &Scorecard{
		Character:    character,
		Build:        target.Name,
		Score:        breakdown,
		Grade:        Grade(breakdown.Total),
		Archetypes:   archetype.Classify(target, false),
		Improvements: improvements,
		EssenceCount: dup.TotalEssences,
		MemoryCount:  len(target.Memories),
	}, nil
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	return out
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
