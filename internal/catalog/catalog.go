// Package catalog loads and indexes the game reference data and build
// collections from their two storage roots.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/quillfox/dreambuild/internal/model"
)

// LoadError reports a reference or build file that could not be loaded,
// carrying the file identity and the underlying cause.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// cache holds every lazily loaded collection and lookup table. A nil
// slot means not yet loaded; InvalidateCache resets the whole struct.
type cache struct {
	bundled map[string][]*model.Build
	custom  map[string][]*model.Build

	essences   []model.Essence
	memories   []model.Memory
	characters []model.Character

	essenceByName   map[string]model.Essence
	rarityByName    map[string]string
	memoryByName    map[string]model.Memory
	characterByName map[string]model.Character
}

// Catalog is the single shared data source for every engine component.
// Reference collections load once and are fatal on failure; build
// collections tolerate missing directories and skip unreadable files.
// Not safe for concurrent use; the tool is single-user, synchronous.
type Catalog struct {
	dataDir   string
	buildsDir string
	customDir string
	log       zerolog.Logger

	c cache
}

// New creates a Catalog over a base directory (containing data/ and
// builds/) and a writable custom-builds directory.
func New(baseDir, customDir string, log zerolog.Logger) *Catalog {
	return &Catalog{
		dataDir:   filepath.Join(baseDir, "data"),
		buildsDir: filepath.Join(baseDir, "builds"),
		customDir: customDir,
		log:       log,
	}
}

// CustomDir returns the writable custom-builds root.
func (c *Catalog) CustomDir() string { return c.customDir }

// InvalidateCache clears every cached collection and lookup table,
// forcing a full reload on the next access. Collaborators that write the
// storage roots directly must call this before reading again.
func (c *Catalog) InvalidateCache() {
	c.c = cache{}
}

func (c *Catalog) loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// Essences returns every essence definition.
func (c *Catalog) Essences() ([]model.Essence, error) {
	if c.c.essences == nil {
		var doc struct {
			Essences []model.Essence `json:"essences"`
		}
		if err := c.loadJSON(filepath.Join(c.dataDir, "essences.json"), &doc); err != nil {
			return nil, err
		}
		c.c.essences = doc.Essences
	}
	return c.c.essences, nil
}

// Memories returns every memory definition.
func (c *Catalog) Memories() ([]model.Memory, error) {
	if c.c.memories == nil {
		var doc struct {
			Memories []model.Memory `json:"memories"`
		}
		if err := c.loadJSON(filepath.Join(c.dataDir, "memories.json"), &doc); err != nil {
			return nil, err
		}
		c.c.memories = doc.Memories
	}
	return c.c.memories, nil
}

// Characters returns every character definition.
func (c *Catalog) Characters() ([]model.Character, error) {
	if c.c.characters == nil {
		var doc struct {
			Characters []model.Character `json:"characters"`
		}
		if err := c.loadJSON(filepath.Join(c.dataDir, "characters.json"), &doc); err != nil {
			return nil, err
		}
		c.c.characters = doc.Characters
	}
	return c.c.characters, nil
}

// EssenceByName returns the name-keyed essence lookup table.
func (c *Catalog) EssenceByName() (map[string]model.Essence, error) {
	if c.c.essenceByName == nil {
		essences, err := c.Essences()
		if err != nil {
			return nil, err
		}
		m := make(map[string]model.Essence, len(essences))
		for _, e := range essences {
			m[e.Name] = e
		}
		c.c.essenceByName = m
	}
	return c.c.essenceByName, nil
}

// RarityMap returns essence name -> rarity tier.
func (c *Catalog) RarityMap() (map[string]string, error) {
	if c.c.rarityByName == nil {
		essences, err := c.Essences()
		if err != nil {
			return nil, err
		}
		m := make(map[string]string, len(essences))
		for _, e := range essences {
			m[e.Name] = e.Rarity
		}
		c.c.rarityByName = m
	}
	return c.c.rarityByName, nil
}

// MemoryByName returns the name-keyed memory lookup table.
func (c *Catalog) MemoryByName() (map[string]model.Memory, error) {
	if c.c.memoryByName == nil {
		memories, err := c.Memories()
		if err != nil {
			return nil, err
		}
		m := make(map[string]model.Memory, len(memories))
		for _, mem := range memories {
			m[mem.Name] = mem
		}
		c.c.memoryByName = m
	}
	return c.c.memoryByName, nil
}

// CharacterByName returns the name-keyed character lookup table.
func (c *Catalog) CharacterByName() (map[string]model.Character, error) {
	if c.c.characterByName == nil {
		characters, err := c.Characters()
		if err != nil {
			return nil, err
		}
		m := make(map[string]model.Character, len(characters))
		for _, ch := range characters {
			m[ch.Name] = ch
		}
		c.c.characterByName = m
	}
	return c.c.characterByName, nil
}

// CountRarity tallies a build's essences (memory slots and passives) by
// rarity tier. Unknown essences are not counted.
func (c *Catalog) CountRarity(b *model.Build) (map[string]int, error) {
	rarity, err := c.RarityMap()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(model.Rarities))
	for _, tier := range model.Rarities {
		counts[tier] = 0
	}
	for _, name := range b.AllEssences() {
		if tier, ok := rarity[name]; ok {
			if _, known := counts[tier]; known {
				counts[tier]++
			}
		}
	}
	return counts, nil
}

// RaritySymbol returns the short display marker for an essence's rarity,
// or "[?]" when the essence or its tier is unknown.
func (c *Catalog) RaritySymbol(essenceName string) string {
	rarity, err := c.RarityMap()
	if err != nil {
		return "[?]"
	}
	switch rarity[essenceName] {
	case model.RarityLegendary:
		return "[L]"
	case model.RarityEpic:
		return "[E]"
	case model.RarityRare:
		return "[R]"
	case model.RarityCommon:
		return "[C]"
	case model.RarityUnique:
		return "[U]"
	}
	return "[?]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
