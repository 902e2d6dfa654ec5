// Package model defines the game data and build record types.
package model

import (
	"encoding/json"
	"fmt"
)

// Rarity tiers for essences.
const (
	RarityCommon    = "Common"
	RarityRare      = "Rare"
	RarityEpic      = "Epic"
	RarityLegendary = "Legendary"
	RarityUnique    = "Unique"
)

// Rarities lists every tier in ascending power order.
var Rarities = []string{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityUnique}

// Essence is a modifier item equipped into memory slots or as a passive.
type Essence struct {
	Name         string   `json:"name"`
	Rarity       string   `json:"rarity"`
	Effect       string   `json:"effect"`
	SynergyTypes []string `json:"synergy_types,omitempty"`
}

// Memory is an ability slot with limited essence capacity.
type Memory struct {
	Name            string   `json:"name"`
	EssenceSlots    int      `json:"essence_slots"`
	SynergyKeywords []string `json:"synergy_keywords,omitempty"`
	Effect          string   `json:"effect"`
}

// Character is a playable character.
type Character struct {
	Name string `json:"name"`
}

// MemorySlot is one memory in a build with its equipped essences.
type MemorySlot struct {
	Name      string   `json:"name"`
	Essences  []string `json:"essences"`
	Rationale string   `json:"rationale,omitempty"`
}

// PassiveEssence is an essence equipped without a memory slot. Build
// documents write it either as a bare string or as {"name": ...}; it
// normalizes to the name on decode and always re-encodes as a string.
type PassiveEssence struct {
	Name string
}

func (p *PassiveEssence) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		p.Name = obj.Name
		return nil
	}
	return json.Unmarshal(data, &p.Name)
}

func (p PassiveEssence) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Name)
}

// Source identifies where a build was loaded from.
type Source int

const (
	SourceBundled Source = iota
	SourceCustom
)

func (s Source) String() string {
	if s == SourceCustom {
		return "custom"
	}
	return "bundled"
}

// Build is a named memory+essence configuration for one character.
type Build struct {
	Name            string           `json:"name"`
	Concept         string           `json:"concept"`
	Playstyle       string           `json:"playstyle"`
	Strategy        string           `json:"strategy,omitempty"`
	Memories        []MemorySlot     `json:"memories"`
	PassiveEssences []PassiveEssence `json:"passive_essences,omitempty"`
	Strengths       []string         `json:"strengths,omitempty"`
	Weaknesses      []string         `json:"weaknesses,omitempty"`

	// Tree configuration is opaque: only presence matters here. Both
	// field names occur in the wild.
	ConstellationTree json.RawMessage `json:"constellation_tree,omitempty"`
	AstrologyTree     json.RawMessage `json:"astrology_tree,omitempty"`

	// Custom marks user-authored builds in the persisted document.
	Custom bool `json:"_custom,omitempty"`

	// Raw is the original JSON document this build was decoded from,
	// kept for structural validation. Not persisted.
	Raw json.RawMessage `json:"-"`

	// Source records which storage root the build came from.
	Source Source `json:"-"`
}

// HasTree reports whether the build carries a tree configuration under
// either field name.
func (b *Build) HasTree() bool {
	return rawPresent(b.ConstellationTree) || rawPresent(b.AstrologyTree)
}

func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// PassiveNames returns the passive essence names in declared order,
// skipping empty entries.
func (b *Build) PassiveNames() []string {
	var names []string
	for _, p := range b.PassiveEssences {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return names
}

// ActiveEssences returns every essence equipped in a memory slot, in
// declared order. Duplicates are preserved.
func (b *Build) ActiveEssences() []string {
	var essences []string
	for _, m := range b.Memories {
		essences = append(essences, m.Essences...)
	}
	return essences
}

// ActiveEssenceSet returns the distinct active essences.
func (b *Build) ActiveEssenceSet() map[string]bool {
	set := make(map[string]bool)
	for _, e := range b.ActiveEssences() {
		set[e] = true
	}
	return set
}

// AllEssences returns active essences followed by passives, in declared
// order. This is the flattening the duplicate rule applies to.
func (b *Build) AllEssences() []string {
	return append(b.ActiveEssences(), b.PassiveNames()...)
}

// BuildFile is the persisted per-character collection document.
type BuildFile struct {
	Character string   `json:"character"`
	Builds    []*Build `json:"builds"`
}

// String implements fmt.Stringer for diagnostics.
func (b *Build) String() string {
	return fmt.Sprintf("%s (%d memories, %s)", b.Name, len(b.Memories), b.Source)
}
