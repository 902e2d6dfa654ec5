package compare

import (
	"sort"

	"github.com/quillfox/dreambuild/internal/archetype"
	"github.com/quillfox/dreambuild/internal/score"
)

// CharacterSummary lists one character's builds.
type CharacterSummary struct {
	BuildCount int      `json:"build_count"`
	Builds     []string `json:"builds"`
}

// TopBuild is one entry in the catalog-wide synergy ranking.
type TopBuild struct {
	Character    string `json:"character"`
	Build        string `json:"build"`
	SynergyScore int    `json:"synergy_score"`
	Complexity   string `json:"complexity"`
}

// Summary is the catalog-wide build overview.
type Summary struct {
	TotalBuilds      int                         `json:"total_builds"`
	Characters       map[string]CharacterSummary `json:"characters"`
	TopSynergyBuilds []TopBuild                  `json:"top_synergy_builds"`
}

// AllBuildsSummary reports build counts per character and the top 5
// builds catalog-wide by weighted synergy metric.
func (c *Comparator) AllBuildsSummary() *Summary {
	summary := &Summary{Characters: make(map[string]CharacterSummary)}

	var scored []TopBuild
	for _, character := range c.cat.CharacterNames() {
		builds := c.cat.BuildsFor(character)
		cs := CharacterSummary{BuildCount: len(builds)}
		for _, b := range builds {
			cs.Builds = append(cs.Builds, b.Name)
			scored = append(scored, TopBuild{
				Character:    character,
				Build:        b.Name,
				SynergyScore: score.WeightedSynergy(b),
				Complexity:   score.Complexity(b),
			})
		}
		summary.Characters[character] = cs
		summary.TotalBuilds += len(builds)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SynergyScore > scored[j].SynergyScore
	})
	if len(scored) > 5 {
		scored = scored[:5]
	}
	summary.TopSynergyBuilds = scored
	return summary
}

// EssenceUsage locates one essence inside one build.
type EssenceUsage struct {
	Character     string   `json:"character"`
	Build         string   `json:"build"`
	Memory        string   `json:"memory"`
	OtherEssences []string `json:"other_essences"`
}

// FindBuildsWithEssence reports every build slotting the named essence.
// At most one memory per build is reported (the first match), with the
// remaining essences in that memory for context.
func (c *Comparator) FindBuildsWithEssence(essenceName string) []EssenceUsage {
	var results []EssenceUsage
	for _, character := range c.cat.CharacterNames() {
		for _, b := range c.cat.BuildsFor(character) {
			for _, slot := range b.Memories {
				if !contains(slot.Essences, essenceName) {
					continue
				}
				others := make([]string, 0, len(slot.Essences))
				for _, e := range slot.Essences {
					if e != essenceName {
						others = append(others, e)
					}
				}
				results = append(results, EssenceUsage{
					Character:     character,
					Build:         b.Name,
					Memory:        slot.Name,
					OtherEssences: others,
				})
				break
			}
		}
	}
	return results
}

// CharacterInsight summarizes build quality and archetype coverage for
// one character.
type CharacterInsight struct {
	BuildCount        int     `json:"build_count"`
	AvgScore          float64 `json:"avg_score"`
	MaxScore          int     `json:"max_score"`
	MinScore          int     `json:"min_score"`
	ArchetypeCoverage float64 `json:"archetype_coverage"`
	UncoveredCount    int     `json:"uncovered_count"`
}

// CrossCharacterComparison compares unified-score spread and archetype
// coverage across every character in the catalog.
func (c *Comparator) CrossCharacterComparison() (map[string]CharacterInsight, error) {
	results := make(map[string]CharacterInsight)

	for _, character := range c.cat.CharacterNames() {
		builds := c.cat.BuildsFor(character)
		if len(builds) == 0 {
			continue
		}

		insight := CharacterInsight{BuildCount: len(builds)}
		sum := 0
		for i, b := range builds {
			breakdown, err := c.engine.UnifiedScore(b)
			if err != nil {
				return nil, err
			}
			total := breakdown.Total
			sum += total
			if i == 0 || total > insight.MaxScore {
				insight.MaxScore = total
			}
			if i == 0 || total < insight.MinScore {
				insight.MinScore = total
			}
		}
		insight.AvgScore = float64(sum) / float64(len(builds))

		if gap := archetype.GapAnalysis(c.cat, character); gap != nil {
			insight.ArchetypeCoverage = gap.CoveragePct
			insight.UncoveredCount = len(gap.Uncovered)
		}
		results[character] = insight
	}

	return results, nil
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
