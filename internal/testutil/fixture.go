// Package testutil provides a fixture catalog for engine tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quillfox/dreambuild/internal/catalog"
)

const essencesJSON = `{
  "essences": [
    {"name": "Glacial Core", "rarity": "Legendary", "effect": "Converts healing into cold shards", "synergy_types": ["cold_damage", "healing"]},
    {"name": "Essence of Clemency", "rarity": "Epic", "effect": "Heals when dealing damage", "synergy_types": ["healing"]},
    {"name": "Essence of Paranoia", "rarity": "Legendary", "effect": "Auto-casts when taking damage", "synergy_types": ["automation"]},
    {"name": "Essence of Momentum", "rarity": "Rare", "effect": "Cooldown reduction per attack", "synergy_types": ["cooldown_reduction", "attack_speed"]},
    {"name": "Essence of Domination", "rarity": "Legendary", "effect": "Crit damage scales infinitely", "synergy_types": ["critical_strike", "scaling"]},
    {"name": "Essence of Fangs", "rarity": "Epic", "effect": "Every 4th attack crits", "synergy_types": ["critical_strike"]},
    {"name": "Perfection", "rarity": "Legendary", "effect": "Universal stat stick", "synergy_types": ["scaling"]},
    {"name": "Essence of Flow", "rarity": "Rare", "effect": "Cooldown reduction on light damage", "synergy_types": ["cooldown_reduction", "light_damage"]},
    {"name": "Essence of Insight", "rarity": "Epic", "effect": "Bonus light damage and haste", "synergy_types": ["light_damage", "cooldown_reduction"]},
    {"name": "Essence of Pain", "rarity": "Unique", "effect": "AoE splash on all damage", "synergy_types": []}
  ]
}`

const memoriesJSON = `{
  "memories": [
    {"name": "Vile Strike", "essence_slots": 3, "synergy_keywords": ["critical_strike", "scaling"], "effect": "A vicious melee strike"},
    {"name": "Radiant Lance", "essence_slots": 3, "synergy_keywords": ["light_damage", "cooldown_reduction"], "effect": "A piercing lance of light"},
    {"name": "Frozen Bulwark", "essence_slots": 3, "synergy_keywords": ["healing", "cold_damage", "defense"], "effect": "A protective wall of ice"}
  ]
}`

const charactersJSON = `{
  "characters": [
    {"name": "Mist"},
    {"name": "Lacerta"}
  ]
}`

const mistBuildsJSON = `{
  "character": "Mist",
  "builds": [
    {
      "name": "Crit Carry",
      "concept": "Critical burst damage assassin",
      "playstyle": "Aggressive burst dps",
      "strategy": "Stack crit damage and execution procs",
      "memories": [
        {"name": "Vile Strike", "essences": ["Essence of Domination", "Essence of Fangs"]},
        {"name": "Radiant Lance", "essences": ["Essence of Insight", "Essence of Flow"]}
      ],
      "passive_essences": [{"name": "Perfection"}],
      "strengths": ["High burst windows"],
      "weaknesses": ["Squishy early game"],
      "constellation_tree": {"path": "destruction"}
    },
    {
      "name": "Frost Warden",
      "concept": "Tanky frost guardian with healing",
      "playstyle": "Defensive tank",
      "memories": [
        {"name": "Frozen Bulwark", "essences": ["Glacial Core", "Essence of Clemency"]}
      ]
    }
  ]
}`

const lacertaBuildsJSON = `{
  "character": "Lacerta",
  "builds": [
    {
      "name": "Auto Retaliate",
      "concept": "Automated paranoia retaliation",
      "playstyle": "Passive auto caster",
      "memories": [
        {"name": "Vile Strike", "essences": ["Essence of Paranoia", "Essence of Momentum"]}
      ]
    }
  ]
}`

// WriteFixture lays out a base directory (data/ + builds/) and an empty
// custom directory under t.TempDir().
func WriteFixture(t *testing.T) (baseDir, customDir string) {
	t.Helper()
	baseDir = t.TempDir()
	customDir = filepath.Join(baseDir, "custom_builds")

	writeFile(t, filepath.Join(baseDir, "data", "essences.json"), essencesJSON)
	writeFile(t, filepath.Join(baseDir, "data", "memories.json"), memoriesJSON)
	writeFile(t, filepath.Join(baseDir, "data", "characters.json"), charactersJSON)
	writeFile(t, filepath.Join(baseDir, "builds", "mist_builds.json"), mistBuildsJSON)
	writeFile(t, filepath.Join(baseDir, "builds", "lacerta_builds.json"), lacertaBuildsJSON)
	return baseDir, customDir
}

// NewCatalog returns a Catalog over a fresh fixture.
func NewCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	baseDir, customDir := WriteFixture(t)
	return catalog.New(baseDir, customDir, zerolog.Nop())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
