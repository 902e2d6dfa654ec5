// Package validate implements the structural and rule-based build
// checks. Findings are data, never errors: hard findings make a build
// invalid, warnings are advisory only.
package validate

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"

	"github.com/quillfox/dreambuild/internal/catalog"
	"github.com/quillfox/dreambuild/internal/model"
)

// Result is a structured validation outcome.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func newResult() Result {
	return Result{Valid: true}
}

func (r *Result) addError(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// DuplicateReport is the outcome of the no-duplicate-essence game rule.
type DuplicateReport struct {
	Valid          bool     `json:"valid"`
	Duplicates     []string `json:"duplicates"`
	TotalEssences  int      `json:"total_essences"`
	UniqueEssences int      `json:"unique_essences"`
}

// NoDuplicateEssences flattens every memory essence plus passive essence
// in declared order and records each name seen a second or later time.
// A build with no essences is valid and reports zero/zero.
func NoDuplicateEssences(b *model.Build) DuplicateReport {
	all := b.AllEssences()
	seen := make(map[string]bool, len(all))
	var duplicates []string
	for _, essence := range all {
		if seen[essence] {
			duplicates = append(duplicates, essence)
		}
		seen[essence] = true
	}
	return DuplicateReport{
		Valid:          len(duplicates) == 0,
		Duplicates:     duplicates,
		TotalEssences:  len(all),
		UniqueEssences: len(seen),
	}
}

// Schema checks the raw build document for required fields and proper
// structure. It operates on the original JSON because the typed record
// cannot distinguish a missing field from an empty one.
func Schema(raw []byte) Result {
	result := newResult()
	doc := gjson.ParseBytes(raw)

	for _, field := range []string{"name", "concept", "playstyle", "memories"} {
		if !doc.Get(field).Exists() {
			result.addError("Missing required field: '%s'", field)
		}
	}

	memories := doc.Get("memories")
	if memories.Exists() {
		if !memories.IsArray() {
			result.addError("'memories' must be a list")
		} else {
			for i, mem := range memories.Array() {
				if !mem.IsObject() {
					result.addError("Memory #%d must be an object", i+1)
					continue
				}
				name := mem.Get("name")
				if !name.Exists() {
					result.addError("Memory #%d missing 'name'", i+1)
				}
				essences := mem.Get("essences")
				switch {
				case !essences.Exists():
					result.addWarning("Memory #%d '%s' has no essences", i+1, orUnknown(name.String()))
				case !essences.IsArray():
					result.addError("Memory #%d 'essences' must be a list", i+1)
				}
			}
		}
	}

	if !treePresent(doc) {
		result.addWarning("Build has no astrology/constellation tree defined")
	}
	if !doc.Get("strengths").Exists() {
		result.addWarning("Build has no strengths listed")
	}
	if !doc.Get("weaknesses").Exists() {
		result.addWarning("Build has no weaknesses listed")
	}

	return result
}

func treePresent(doc gjson.Result) bool {
	for _, field := range []string{"constellation_tree", "astrology_tree"} {
		if t := doc.Get(field); t.Exists() && t.Type != gjson.Null {
			return true
		}
	}
	return false
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// References warns about memory and essence names that do not exist in
// the reference data, for both memory slots and passives. Reference
// findings never invalidate a build on their own.
func References(b *model.Build, essences map[string]model.Essence, memories map[string]model.Memory) Result {
	result := newResult()

	for _, slot := range b.Memories {
		if slot.Name != "" {
			if _, ok := memories[slot.Name]; !ok {
				result.addWarning("Memory '%s' not found in memories.json", slot.Name)
			}
		}
		for _, essence := range slot.Essences {
			if _, ok := essences[essence]; !ok {
				result.addWarning("Essence '%s' not found in essences.json", essence)
			}
		}
	}
	for _, name := range b.PassiveNames() {
		if _, ok := essences[name]; !ok {
			result.addWarning("Passive essence '%s' not found in essences.json", name)
		}
	}

	return result
}

// Full merges the schema, duplicate-essence, and (when a catalog is
// supplied) reference checks into one result. The returned error is only
// for reference data that could not be loaded.
func Full(b *model.Build, cat *catalog.Catalog) (Result, error) {
	result := newResult()

	schema := Schema(rawDocument(b))
	result.Errors = append(result.Errors, schema.Errors...)
	result.Warnings = append(result.Warnings, schema.Warnings...)
	if !schema.Valid {
		result.Valid = false
	}

	if dup := NoDuplicateEssences(b); !dup.Valid {
		result.addError("Duplicate essences: %s (game rule: each essence can only be used once per build)",
			strings.Join(dup.Duplicates, ", "))
	}

	if cat != nil {
		essences, err := cat.EssenceByName()
		if err != nil {
			return result, err
		}
		memories, err := cat.MemoryByName()
		if err != nil {
			return result, err
		}
		refs := References(b, essences, memories)
		result.Warnings = append(result.Warnings, refs.Warnings...)
		if !refs.Valid {
			result.Errors = append(result.Errors, refs.Errors...)
			result.Valid = false
		}
	}

	return result, nil
}

// rawDocument returns the build's original JSON, re-encoding the typed
// record for builds constructed in memory.
func rawDocument(b *model.Build) []byte {
	if len(b.Raw) > 0 {
		return b.Raw
	}
	data, err := sonic.Marshal(b)
	if err != nil {
		return nil
	}
	return data
}
