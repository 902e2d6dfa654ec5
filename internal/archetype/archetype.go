// Package archetype tags builds against the fixed playstyle taxonomy
// and reports per-character coverage gaps.
package archetype

import (
	"strings"

	"github.com/quillfox/dreambuild/internal/catalog"
	"github.com/quillfox/dreambuild/internal/model"
)

// Archetype is one entry in the curated playstyle taxonomy.
type Archetype struct {
	Name        string   `json:"archetype"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
}

// Taxonomy is the fixed archetype table. It is reviewable data, not
// branching logic: a build expresses an archetype when at least two of
// its keywords occur in the build's text fields.
var Taxonomy = []Archetype{
	{"damage_burst", []string{"burst", "execution", "damage", "assassin", "dps", "nuke"},
		"High burst damage dealer"},
	{"damage_sustained", []string{"sustained", "dps", "basic attack", "attack speed", "continuous"},
		"Sustained damage over time"},
	{"tank", []string{"tank", "defense", "shield", "fortress", "guardian", "barrier"},
		"Tanky survivability build"},
	{"healer_support", []string{"heal", "support", "ally", "buff", "restore"},
		"Healing and support focus"},
	{"scaling_infinite", []string{"scaling", "infinite", "faith", "domination", "divine", "stacks"},
		"Infinite scaling late-game build"},
	{"automation", []string{"auto", "paranoia", "retaliation", "automated", "passive"},
		"Automated/low-management build"},
	{"crowd_control", []string{"stun", "slow", "crowd", "control", "freeze", "cc"},
		"Crowd control and utility"},
	{"mobility", []string{"mobility", "speed", "dash", "movement", "agile"},
		"Mobile hit-and-run playstyle"},
	{"summoner", []string{"summon", "pack", "minion", "companion", "pet"},
		"Summon/pet-based build"},
	{"elemental_fire", []string{"fire", "burn", "flame", "inferno", "solar"},
		"Fire/burn damage specialist"},
	{"elemental_cold", []string{"cold", "frost", "freeze", "ice", "glacial"},
		"Cold/freeze specialist"},
	{"elemental_dark", []string{"dark", "shadow", "twilight", "abyss", "void"},
		"Dark damage specialist"},
	{"elemental_light", []string{"light", "radiant", "thunder", "lightning", "beam"},
		"Light/thunder damage specialist"},
}

// minMatches is how many keyword hits a build needs to express an
// archetype.
const minMatches = 2

func buildText(b *model.Build, withStrategy bool) string {
	parts := []string{b.Name, b.Concept, b.Playstyle}
	if withStrategy {
		parts = append(parts, b.Strategy)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func matches(text string, a Archetype) int {
	n := 0
	for _, kw := range a.Keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// Classify returns the archetypes a build expresses, in taxonomy order.
// Scorecards match on name+concept+playstyle; gap analysis additionally
// searches the strategy text.
func Classify(b *model.Build, withStrategy bool) []string {
	text := buildText(b, withStrategy)
	var tags []string
	for _, a := range Taxonomy {
		if matches(text, a) >= minMatches {
			tags = append(tags, a.Name)
		}
	}
	return tags
}

// Coverage lists the builds expressing one covered archetype.
type Coverage struct {
	Builds      []string `json:"builds"`
	Description string   `json:"description"`
}

// GapReport is the per-character archetype coverage outcome.
type GapReport struct {
	Character   string              `json:"character"`
	TotalBuilds int                 `json:"total_builds"`
	Covered     map[string]Coverage `json:"covered_archetypes"`
	Uncovered   []Archetype         `json:"uncovered_archetypes"`
	CoveragePct float64             `json:"coverage_pct"`
}

// GapAnalysis reports which archetypes a character's builds cover and
// which are missing. Unknown characters yield nil, never an error.
func GapAnalysis(cat *catalog.Catalog, character string) *GapReport {
	builds := cat.BuildsFor(character)
	if len(builds) == 0 {
		return nil
	}

	covered := make(map[string]Coverage)
	for _, b := range builds {
		text := buildText(b, true)
		for _, a := range Taxonomy {
			if matches(text, a) < minMatches {
				continue
			}
			cov := covered[a.Name]
			cov.Description = a.Description
			cov.Builds = append(cov.Builds, b.Name)
			covered[a.Name] = cov
		}
	}

	var uncovered []Archetype
	for _, a := range Taxonomy {
		if _, ok := covered[a.Name]; !ok {
			uncovered = append(uncovered, a)
		}
	}

	return &GapReport{
		Character:   character,
		TotalBuilds: len(builds),
		Covered:     covered,
		Uncovered:   uncovered,
		CoveragePct: float64(len(covered)) / float64(len(Taxonomy)) * 100,
	}
}
