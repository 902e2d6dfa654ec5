// Package compare ranks a character's builds and scores them against
// stated playstyle preferences.
package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quillfox/dreambuild/internal/catalog"
	"github.com/quillfox/dreambuild/internal/model"
	"github.com/quillfox/dreambuild/internal/score"
	"github.com/quillfox/dreambuild/internal/synergy"
	"github.com/quillfox/dreambuild/internal/validate"
)

// playstyleKeywords maps a stated playstyle preference to the build-text
// keywords that express it.
var playstyleKeywords = map[string][]string{
	"aggressive": {"damage", "offensive", "burst", "execution", "assassin", "dps"},
	"defensive":  {"tank", "shield", "defense", "survivability", "guardian", "protection"},
	"support":    {"heal", "support", "ally", "buff", "healer"},
	"mobile":     {"mobility", "movement", "speed", "dash", "agile"},
	"automated":  {"automated", "paranoia", "auto", "passive", "retaliation"},
}

// focusKeywords maps a stated focus preference to concept/strategy
// keywords.
var focusKeywords = map[string][]string{
	"damage":        {"damage", "dps", "burst", "execution"},
	"survivability": {"tank", "defense", "health", "healing", "sustain"},
	"utility":       {"support", "summon", "buff", "utility"},
	"scaling":       {"scaling", "infinite", "faith", "domination", "stacks"},
}

// Comparator ranks and recommends builds out of the catalog.
type Comparator struct {
	cat    *catalog.Catalog
	engine *score.Engine
}

// New returns a Comparator over the given catalog.
func New(cat *catalog.Catalog) *Comparator {
	return &Comparator{cat: cat, engine: score.NewEngine(cat)}
}

// ComparedBuild is one build's entry in a comparison.
type ComparedBuild struct {
	Name           string                   `json:"name"`
	Playstyle      string                   `json:"playstyle"`
	Complexity     string                   `json:"complexity"`
	SynergyScore   int                      `json:"synergy_score"`
	SynergyDetails []synergy.Info           `json:"synergy_details"`
	EssenceRarity  map[string]int           `json:"essence_rarity"`
	Validation     validate.DuplicateReport `json:"validation"`
	Strengths      []string                 `json:"strengths,omitempty"`
	Weaknesses     []string                 `json:"weaknesses,omitempty"`
}

// Comparison holds every build for a character, ranked by weighted
// synergy metric descending. Error is set for unknown characters.
type Comparison struct {
	Character string          `json:"character"`
	Builds    []ComparedBuild `json:"builds"`
	Error     string          `json:"error,omitempty"`
}

// CompareBuilds evaluates and ranks every build for a character.
func (c *Comparator) CompareBuilds(character string) (*Comparison, error) {
	builds := c.cat.BuildsFor(character)
	if len(builds) == 0 {
		return &Comparison{
			Character: strings.ToLower(character),
			Error:     c.notFoundMessage(character),
		}, nil
	}

	comparison := &Comparison{Character: strings.ToLower(character)}
	for _, b := range builds {
		rarity, err := c.cat.CountRarity(b)
		if err != nil {
			return nil, err
		}
		playstyle := b.Playstyle
		if playstyle == "" {
			playstyle = "N/A"
		}
		comparison.Builds = append(comparison.Builds, ComparedBuild{
			Name:           b.Name,
			Playstyle:      playstyle,
			Complexity:     score.Complexity(b),
			SynergyScore:   score.WeightedSynergy(b),
			SynergyDetails: score.SynergyDetails(b),
			EssenceRarity:  rarity,
			Validation:     validate.NoDuplicateEssences(b),
			Strengths:      b.Strengths,
			Weaknesses:     b.Weaknesses,
		})
	}

	sort.SliceStable(comparison.Builds, func(i, j int) bool {
		return comparison.Builds[i].SynergyScore > comparison.Builds[j].SynergyScore
	})
	return comparison, nil
}

// Preferences states what the player wants out of a build.
type Preferences struct {
	Playstyle  string `json:"playstyle,omitempty"`
	Complexity string `json:"complexity,omitempty"`
	Focus      string `json:"focus,omitempty"`
}

// Recommendation is one build scored against the preferences.
type Recommendation struct {
	Build         string         `json:"build"`
	Score         int            `json:"score"`
	SynergyScore  int            `json:"synergy_score"`
	Complexity    string         `json:"complexity"`
	EssenceRarity map[string]int `json:"essence_rarity"`
}

// RecommendationResult ranks every build against the preferences,
// highest first. Error is set for unknown characters, with zero
// recommendations.
type RecommendationResult struct {
	Character       string           `json:"character"`
	Preferences     Preferences      `json:"preferences"`
	Recommendations []Recommendation `json:"recommendations"`
	Top             *Recommendation  `json:"top_recommendation,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// RecommendBuild scores every build for a character against the stated
// preferences. Ties keep catalog order.
func (c *Comparator) RecommendBuild(character string, prefs Preferences) (*RecommendationResult, error) {
	builds := c.cat.BuildsFor(character)
	if len(builds) == 0 {
		return &RecommendationResult{
			Character:   strings.ToLower(character),
			Preferences: prefs,
			Error:       c.notFoundMessage(character),
		}, nil
	}

	result := &RecommendationResult{
		Character:   strings.ToLower(character),
		Preferences: prefs,
	}

	for _, b := range builds {
		total := 0

		if keywords, ok := playstyleKeywords[strings.ToLower(prefs.Playstyle)]; ok {
			text := strings.ToLower(b.Playstyle + " " + b.Concept + " " + b.Name)
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					total += 10
				}
			}
		}

		complexity := score.Complexity(b)
		preferred := strings.ToLower(prefs.Complexity)
		if strings.ToLower(complexity) == preferred {
			total += 5
		} else if preferred == "any" {
			total += 2
		}

		if keywords, ok := focusKeywords[strings.ToLower(prefs.Focus)]; ok {
			text := strings.ToLower(b.Concept + " " + b.Strategy)
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					total += 10
				}
			}
		}

		synergyScore := score.WeightedSynergy(b)
		total += synergyScore / 5

		rarity, err := c.cat.CountRarity(b)
		if err != nil {
			return nil, err
		}
		total += rarity[model.RarityLegendary] * 3

		result.Recommendations = append(result.Recommendations, Recommendation{
			Build:         b.Name,
			Score:         total,
			SynergyScore:  synergyScore,
			Complexity:    complexity,
			EssenceRarity: rarity,
		})
	}

	sort.SliceStable(result.Recommendations, func(i, j int) bool {
		return result.Recommendations[i].Score > result.Recommendations[j].Score
	})
	result.Top = &result.Recommendations[0]
	return result, nil
}

func (c *Comparator) notFoundMessage(character string) string {
	return fmt.Sprintf("Character '%s' not found. Available: %s",
		character, strings.Join(c.cat.CharacterNames(), ", "))
}
