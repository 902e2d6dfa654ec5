package score

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quillfox/dreambuild/internal/model"
	"github.com/quillfox/dreambuild/internal/synergy"
	"github.com/quillfox/dreambuild/internal/validate"
)

// MemoryEssenceDetail reports how well one essence matches its memory's
// synergy keywords.
type MemoryEssenceDetail struct {
	Essence string   `json:"essence"`
	Matches []string `json:"matches"`
	Synergy string   `json:"synergy"`
}

// MemorySynergyResult is the per-memory analysis outcome.
type MemorySynergyResult struct {
	Memory        string                `json:"memory"`
	Essences      []string              `json:"essences"`
	Score         int                   `json:"synergy_score"`
	EssenceDetail []MemoryEssenceDetail `json:"memory_essence_details"`
	PairSynergies []synergy.Info        `json:"essence_essence_synergies"`
}

// MemorySynergy analyzes one memory slot: keyword/type matches between
// the memory and each essence (+10 per match), pair synergies among the
// slotted essences, and a category-overlap bonus when two or more
// essences share a synergy category. Unknown memories yield (nil, nil).
func (e *Engine) MemorySynergy(memoryName string, essenceNames []string) (*MemorySynergyResult, error) {
	memories, err := e.cat.MemoryByName()
	if err != nil {
		return nil, err
	}
	mem, ok := memories[memoryName]
	if !ok {
		return nil, nil
	}
	essences, err := e.cat.EssenceByName()
	if err != nil {
		return nil, err
	}

	keywords := make(map[string]bool, len(mem.SynergyKeywords))
	for _, kw := range mem.SynergyKeywords {
		keywords[kw] = true
	}

	result := &MemorySynergyResult{Memory: memoryName, Essences: essenceNames}

	for _, name := range essenceNames {
		essence, known := essences[name]
		if !known {
			continue
		}
		var matched []string
		for _, t := range essence.SynergyTypes {
			if keywords[t] {
				matched = append(matched, t)
			}
		}
		detail := MemoryEssenceDetail{Essence: name, Matches: matched, Synergy: "low"}
		if len(matched) > 0 {
			result.Score += len(matched) * 10
			detail.Synergy = "high"
		}
		result.EssenceDetail = append(result.EssenceDetail, detail)
	}

	for i, a := range essenceNames {
		for _, b := range essenceNames[i+1:] {
			if info, ok := synergy.ForPair(a, b); ok {
				result.Score += info.Score
				result.PairSynergies = append(result.PairSynergies, synergy.Info{
					Essences:    []string{a, b},
					Score:       info.Score,
					Description: info.Description,
				})
			}
		}
	}

	result.Score += categoryOverlapBonus(essenceNames, essences)
	return result, nil
}

// categoryOverlapBonus awards 5*(n-1) points for every synergy category
// that two or more of the essences share.
func categoryOverlapBonus(names []string, essences map[string]model.Essence) int {
	bonus := 0
	for _, category := range synergy.Categories() {
		types := synergy.TypesForCategory(category)
		typeSet := make(map[string]bool, len(types))
		for _, t := range types {
			typeSet[t] = true
		}
		count := 0
		for _, name := range names {
			for _, t := range essences[name].SynergyTypes {
				if typeSet[t] {
					count++
					break
				}
			}
		}
		if count >= 2 {
			bonus += 5 * (count - 1)
		}
	}
	return bonus
}

// MemoryEvaluation is one memory slot's contribution inside a full build
// evaluation.
type MemoryEvaluation struct {
	Memory           string         `json:"memory"`
	Essences         []string       `json:"essences"`
	Score            int            `json:"synergy_score"`
	EssenceSynergies []synergy.Info `json:"essence_synergies"`
}

// BuildEvaluation is the whole-build synergy analysis.
type BuildEvaluation struct {
	Character      string                   `json:"character"`
	Memories       []MemoryEvaluation       `json:"memories"`
	AstrologyPath  string                   `json:"astrology_path"`
	OverallScore   int                      `json:"overall_score"`
	Validation     validate.DuplicateReport `json:"validation"`
	Strengths      []string                 `json:"strengths"`
	Weaknesses     []string                 `json:"weaknesses"`
	CrossSynergies []synergy.Info           `json:"cross_memory_synergies"`
}

// EvaluateBuild scores a full slot configuration for a character:
// per-memory synergies plus cross-memory pair coverage, with
// strength/weakness commentary. Unknown characters yield (nil, nil).
func (e *Engine) EvaluateBuild(characterName string, slots []model.MemorySlot, astrologyPath string) (*BuildEvaluation, error) {
	characters, err := e.cat.CharacterByName()
	if err != nil {
		return nil, err
	}
	if _, ok := characters[characterName]; !ok {
		return nil, nil
	}

	build := &model.Build{Memories: slots}
	eval := &BuildEvaluation{
		Character:     characterName,
		AstrologyPath: astrologyPath,
		Validation:    validate.NoDuplicateEssences(build),
	}

	if !eval.Validation.Valid {
		eval.Weaknesses = append(eval.Weaknesses,
			fmt.Sprintf("INVALID: Duplicate essences: %s", strings.Join(eval.Validation.Duplicates, ", ")))
	}

	total := 0
	for _, slot := range slots {
		res, err := e.MemorySynergy(slot.Name, slot.Essences)
		if err != nil {
			return nil, err
		}
		entry := MemoryEvaluation{Memory: slot.Name, Essences: slot.Essences}
		if res != nil {
			entry.Score = res.Score
			entry.EssenceSynergies = res.PairSynergies
			total += res.Score
		}
		eval.Memories = append(eval.Memories, entry)
	}

	cross := synergy.FindAllInSet(build.ActiveEssences())
	eval.CrossSynergies = cross
	for _, info := range cross {
		total += info.Score
	}
	eval.OverallScore = total

	switch {
	case total > 150:
		eval.Strengths = append(eval.Strengths, "Exceptional synergy between components")
	case total > 100:
		eval.Strengths = append(eval.Strengths, "High synergy between components")
	case total > 50:
		eval.Strengths = append(eval.Strengths, "Good synergy between components")
	}

	switch strings.ToLower(astrologyPath) {
	case "destruction", "life":
		eval.Strengths = append(eval.Strengths, fmt.Sprintf("Focused %s path", astrologyPath))
	}

	rarity, err := e.cat.RarityMap()
	if err != nil {
		return nil, err
	}
	legendary := 0
	for _, name := range build.ActiveEssences() {
		if rarity[name] == model.RarityLegendary {
			legendary++
		}
	}
	switch {
	case legendary >= 3:
		eval.Strengths = append(eval.Strengths,
			fmt.Sprintf("High-power build with %d Legendary essences", legendary))
	case legendary == 0:
		eval.Weaknesses = append(eval.Weaknesses, "No Legendary essences - may lack late-game power")
	}

	return eval, nil
}

// Suggestion ranks a candidate essence for a memory slot.
type Suggestion struct {
	Essence            string   `json:"essence"`
	Rarity             string   `json:"rarity"`
	MatchingKeywords   []string `json:"matching_keywords"`
	SynergyWithCurrent int      `json:"synergy_with_current"`
	TotalScore         int      `json:"total_score"`
}

// SuggestUpgrades ranks reference essences against a memory's keywords
// and the essences already slotted, returning the top 5. An unknown
// memory yields (nil, nil).
func (e *Engine) SuggestUpgrades(memoryName string, current []string) ([]Suggestion, error) {
	memories, err := e.cat.MemoryByName()
	if err != nil {
		return nil, err
	}
	mem, ok := memories[memoryName]
	if !ok {
		return nil, nil
	}
	all, err := e.cat.Essences()
	if err != nil {
		return nil, err
	}

	keywords := make(map[string]bool, len(mem.SynergyKeywords))
	for _, kw := range mem.SynergyKeywords {
		keywords[kw] = true
	}
	inUse := make(map[string]bool, len(current))
	for _, name := range current {
		inUse[name] = true
	}

	suggestions := []Suggestion{}
	for _, essence := range all {
		if inUse[essence.Name] {
			continue
		}
		var matched []string
		for _, t := range essence.SynergyTypes {
			if keywords[t] {
				matched = append(matched, t)
			}
		}
		if len(matched) == 0 {
			continue
		}

		withCurrent := 0
		for _, name := range current {
			withCurrent += synergy.PairScore(essence.Name, name)
		}

		suggestions = append(suggestions, Suggestion{
			Essence:            essence.Name,
			Rarity:             essence.Rarity,
			MatchingKeywords:   matched,
			SynergyWithCurrent: withCurrent,
			TotalScore:         len(matched)*10 + withCurrent,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TotalScore > suggestions[j].TotalScore
	})
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions, nil
}

// Substitute ranks a replacement essence filling a similar role.
type Substitute struct {
	Essence     string   `json:"essence"`
	Rarity      string   `json:"rarity"`
	SharedTypes []string `json:"shared_types"`
	RarityMatch bool     `json:"rarity_match"`
	TotalScore  int      `json:"total_score"`
}

// SuggestSubstitutes ranks essences sharing synergy types with the
// given one, preferring the same rarity, returning the top 5. An
// unknown or untyped essence yields (nil, nil).
func (e *Engine) SuggestSubstitutes(essenceName string) ([]Substitute, error) {
	byName, err := e.cat.EssenceByName()
	if err != nil {
		return nil, err
	}
	original, ok := byName[essenceName]
	if !ok || len(original.SynergyTypes) == 0 {
		return nil, nil
	}
	all, err := e.cat.Essences()
	if err != nil {
		return nil, err
	}

	originalTypes := make(map[string]bool, len(original.SynergyTypes))
	for _, t := range original.SynergyTypes {
		originalTypes[t] = true
	}

	candidates := []Substitute{}
	for _, essence := range all {
		if essence.Name == essenceName {
			continue
		}
		var shared []string
		for _, t := range essence.SynergyTypes {
			if originalTypes[t] {
				shared = append(shared, t)
			}
		}
		if len(shared) == 0 {
			continue
		}
		rarityMatch := essence.Rarity == original.Rarity
		total := len(shared) * 10
		if rarityMatch {
			total += 5
		}
		candidates = append(candidates, Substitute{
			Essence:     essence.Name,
			Rarity:      essence.Rarity,
			SharedTypes: shared,
			RarityMatch: rarityMatch,
			TotalScore:  total,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalScore > candidates[j].TotalScore
	})
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	return candidates, nil
}
