package score

import (
	"strings"
	"testing"

	"github.com/quillfox/dreambuild/internal/model"
	"github.com/quillfox/dreambuild/internal/testutil"
)

func TestUnifiedScore_CritCarry(t *testing.T) {
	cat := testutil.NewCatalog(t)
	engine := NewEngine(cat)
	b := cat.BuildsFor("mist")[0]

	breakdown, err := engine.UnifiedScore(b)
	if err != nil {
		t.Fatal(err)
	}
	// Domination+Fangs (18) and Insight+Flow (18) are the only active
	// synergies; Perfection is passive and stays out of the raw score.
	if breakdown.RawSynergy != 36 {
		t.Errorf("raw synergy = %d, want 36", breakdown.RawSynergy)
	}
	if breakdown.Synergy != 12 {
		t.Errorf("synergy component = %d, want 12", breakdown.Synergy)
	}
	// 2 Legendary (Domination, passive Perfection) + 2 Epic.
	if breakdown.Rarity != 14 {
		t.Errorf("rarity component = %d, want 14", breakdown.Rarity)
	}
	if breakdown.Validity != 20 {
		t.Errorf("validity component = %d, want 20", breakdown.Validity)
	}
	// Memories, tree, strategy, strengths, weaknesses all present.
	if breakdown.Completeness != 20 {
		t.Errorf("completeness = %d, want 20", breakdown.Completeness)
	}
	if breakdown.Total != 66 {
		t.Errorf("total = %d, want 66", breakdown.Total)
	}
	if len(breakdown.Details) != 2 {
		t.Errorf("expected 2 synergy details, got %v", breakdown.Details)
	}
}

func TestUnifiedScore_FrostWarden(t *testing.T) {
	cat := testutil.NewCatalog(t)
	engine := NewEngine(cat)
	b := cat.BuildsFor("mist")[1]

	breakdown, err := engine.UnifiedScore(b)
	if err != nil {
		t.Fatal(err)
	}
	if breakdown.RawSynergy != 25 {
		t.Errorf("raw synergy = %d, want 25", breakdown.RawSynergy)
	}
	if breakdown.Synergy != 8 {
		t.Errorf("synergy component = %d, want 8", breakdown.Synergy)
	}
	if breakdown.Rarity != 7 {
		t.Errorf("rarity component = %d, want 7", breakdown.Rarity)
	}
	if breakdown.Completeness != 5 {
		t.Errorf("completeness = %d, want 5", breakdown.Completeness)
	}
	if breakdown.Total != 40 {
		t.Errorf("total = %d, want 40", breakdown.Total)
	}
}

func TestUnifiedScore_DuplicatesZeroValidity(t *testing.T) {
	cat := testutil.NewCatalog(t)
	engine := NewEngine(cat)
	b := &model.Build{
		Name: "Dup",
		Memories: []model.MemorySlot{
			{Name: "Vile Strike", Essences: []string{"Essence of Fangs", "Essence of Fangs"}},
		},
	}

	breakdown, err := engine.UnifiedScore(b)
	if err != nil {
		t.Fatal(err)
	}
	if breakdown.Validity != 0 {
		t.Errorf("validity = %d, want 0 for duplicate essences", breakdown.Validity)
	}
}

func TestUnifiedScore_SynergyCap(t *testing.T) {
	cat := testutil.NewCatalog(t)
	engine := NewEngine(cat)
	// Four stacked synergies well past the 120 normalization point.
	b := &model.Build{
		Name: "Stacked",
		Memories: []model.MemorySlot{
			{Name: "Vile Strike", Essences: []string{
				"Glacial Core", "Essence of Clemency",
				"Essence of Paranoia", "Essence of Momentum",
				"Essence of Domination", "Essence of Fangs",
				"Essence of Insight", "Essence of Flow",
				"Perfection", "Essence of Pain",
			}},
		},
	}

	breakdown, err := engine.UnifiedScore(b)
	if err != nil {
		t.Fatal(err)
	}
	// 25+20+18+18+14 pairs plus 15+12+12 solos.
	if breakdown.RawSynergy != 134 {
		t.Errorf("raw synergy = %d, want 134", breakdown.RawSynergy)
	}
	if breakdown.Synergy != 40 {
		t.Errorf("synergy component = %d, want capped 40", breakdown.Synergy)
	}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{100, "S"}, {90, "S"},
		{89, "A"}, {80, "A"},
		{79, "B"}, {65, "B"},
		{64, "C"}, {50, "C"},
		{49, "D"}, {35, "D"},
		{34, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := Grade(tc.total); got != tc.want {
			t.Errorf("Grade(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestComplexity(t *testing.T) {
	cat := testutil.NewCatalog(t)

	// 2 memories + 4 active essences/3 + passive + tree = 5.
	if got := Complexity(cat.BuildsFor("mist")[0]); got != "Medium" {
		t.Errorf("Crit Carry complexity = %q, want Medium", got)
	}
	// Single memory, two essences, nothing else = 1.
	if got := Complexity(cat.BuildsFor("mist")[1]); got != "Low" {
		t.Errorf("Frost Warden complexity = %q, want Low", got)
	}

	big := &model.Build{
		Memories: []model.MemorySlot{
			{Name: "a", Essences: []string{"1", "2", "3"}},
			{Name: "b", Essences: []string{"4", "5", "6"}},
			{Name: "c", Essences: []string{"7", "8", "9"}},
			{Name: "d", Essences: []string{"10", "11", "12"}},
		},
		PassiveEssences:   []model.PassiveEssence{{Name: "p"}},
		ConstellationTree: []byte(`{"path": "destruction"}`),
	}
	// 4 + 12/3 + 1 + 1 = 10.
	if got := Complexity(big); got != "High" {
		t.Errorf("stacked build complexity = %q, want High", got)
	}
}

func TestWeightedSynergy(t *testing.T) {
	cat := testutil.NewCatalog(t)

	// Active 36 plus half of Perfection+Fangs (14/2 = 7).
	if got := WeightedSynergy(cat.BuildsFor("mist")[0]); got != 43 {
		t.Errorf("Crit Carry weighted synergy = %d, want 43", got)
	}
	// No passives: identical to the raw active score.
	if got := WeightedSynergy(cat.BuildsFor("mist")[1]); got != 25 {
		t.Errorf("Frost Warden weighted synergy = %d, want 25", got)
	}
	if got := WeightedSynergy(cat.BuildsFor("lacerta")[0]); got != 35 {
		t.Errorf("Auto Retaliate weighted synergy = %d, want 35", got)
	}
}

func TestScorecard(t *testing.T) {
	cat := testutil.NewCatalog(t)
	engine := NewEngine(cat)

	card, err := engine.Scorecard("mist", "crit")
	if err != nil {
		t.Fatal(err)
	}
	if card == nil {
		t.Fatal("expected scorecard for substring match")
	}
	if card.Build != "Crit Carry" {
		t.Errorf("build = %q, want Crit Carry", card.Build)
	}
	if card.Grade != "B" {
		t.Errorf("grade = %q, want B", card.Grade)
	}
	if card.EssenceCount != 5 || card.MemoryCount != 2 {
		t.Errorf("counts = %d essences / %d memories, want 5/2", card.EssenceCount, card.MemoryCount)
	}
	if len(card.Archetypes) != 1 || card.Archetypes[0] != "damage_burst" {
		t.Errorf("archetypes = %v, want [damage_burst]", card.Archetypes)
	}
	// Synergy 12 < 20 is the only trigger for this build.
	if len(card.Improvements) != 1 || !strings.Contains(card.Improvements[0], "Low synergy") {
		t.Errorf("improvements = %v", card.Improvements)
	}
}

func TestScorecard_Improvements(t *testing.T) {
	cat := testutil.NewCatalog(t)
	engine := NewEngine(cat)

	card, err := engine.Scorecard("mist", "frost warden")
	if err != nil {
		t.Fatal(err)
	}
	if card == nil {
		t.Fatal("expected scorecard")
	}
	if len(card.Improvements) != 3 {
		t.Fatalf("expected 3 improvements, got %v", card.Improvements)
	}
	for i, want := range []string{"Low synergy", "Few high-rarity", "Missing constellation"} {
		if !strings.Contains(card.Improvements[i], want) {
			t.Errorf("improvement #%d = %q, want mention of %q", i, card.Improvements[i], want)
		}
	}
}

func TestScorecard_NotFound(t *testing.T) {
	cat := testutil.NewCatalog(t)
	engine := NewEngine(cat)

	card, err := engine.Scorecard("mist", "no such build")
	if err != nil || card != nil {
		t.Errorf("missing build should yield nil, nil; got %v, %v", card, err)
	}
	card, err = engine.Scorecard("nobody", "crit")
	if err != nil || card != nil {
		t.Errorf("missing character should yield nil, nil; got %v, %v", card, err)
	}
}
