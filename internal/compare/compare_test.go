package compare

import (
	"strings"
	"testing"

	"github.com/quillfox/dreambuild/internal/testutil"
)

func TestCompareBuilds_Ranking(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	comparison, err := c.CompareBuilds("Mist")
	if err != nil {
		t.Fatal(err)
	}
	if comparison.Error != "" {
		t.Fatalf("unexpected error field: %s", comparison.Error)
	}
	if comparison.Character != "mist" {
		t.Errorf("character = %q, want lowercase mist", comparison.Character)
	}
	if len(comparison.Builds) != 2 {
		t.Fatalf("expected 2 builds, got %d", len(comparison.Builds))
	}
	// Ranked by weighted synergy descending: 43 over 25.
	if comparison.Builds[0].Name != "Crit Carry" || comparison.Builds[0].SynergyScore != 43 {
		t.Errorf("top build = %s (%d), want Crit Carry (43)", comparison.Builds[0].Name, comparison.Builds[0].SynergyScore)
	}
	if comparison.Builds[1].Name != "Frost Warden" || comparison.Builds[1].SynergyScore != 25 {
		t.Errorf("second build = %s (%d), want Frost Warden (25)", comparison.Builds[1].Name, comparison.Builds[1].SynergyScore)
	}
	if !comparison.Builds[0].Validation.Valid {
		t.Error("expected valid duplicate report")
	}
	if comparison.Builds[1].Playstyle != "Defensive tank" {
		t.Errorf("playstyle = %q", comparison.Builds[1].Playstyle)
	}
}

func TestCompareBuilds_UnknownCharacter(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	comparison, err := c.CompareBuilds("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if comparison.Error == "" {
		t.Fatal("expected error field for unknown character")
	}
	if !strings.Contains(comparison.Error, "not found") || !strings.Contains(comparison.Error, "mist") {
		t.Errorf("error should name the character and list available ones: %s", comparison.Error)
	}
	if len(comparison.Builds) != 0 {
		t.Errorf("expected no builds, got %d", len(comparison.Builds))
	}
}

func TestRecommendBuild_Aggressive(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	result, err := c.RecommendBuild("mist", Preferences{Playstyle: "aggressive", Complexity: "any"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Error != "" {
		t.Fatalf("unexpected error field: %s", result.Error)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(result.Recommendations))
	}
	// 4 playstyle keyword hits (40) + any-complexity (2) + 43/5 (8) +
	// 2 Legendary (6).
	top := result.Recommendations[0]
	if top.Build != "Crit Carry" || top.Score != 56 {
		t.Errorf("top = %s (%d), want Crit Carry (56)", top.Build, top.Score)
	}
	second := result.Recommendations[1]
	if second.Build != "Frost Warden" || second.Score != 10 {
		t.Errorf("second = %s (%d), want Frost Warden (10)", second.Build, second.Score)
	}
	if result.Top == nil || result.Top.Build != "Crit Carry" {
		t.Errorf("top recommendation = %+v", result.Top)
	}
}

func TestRecommendBuild_DefensiveFlipsRanking(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	result, err := c.RecommendBuild("mist", Preferences{Playstyle: "defensive", Complexity: "any"})
	if err != nil {
		t.Fatal(err)
	}
	// tank, defense, guardian hit (30) + any (2) + 25/5 (5) + 1 Legendary (3).
	if result.Top.Build != "Frost Warden" || result.Top.Score != 40 {
		t.Errorf("top = %s (%d), want Frost Warden (40)", result.Top.Build, result.Top.Score)
	}
}

func TestRecommendBuild_ExactComplexityBonus(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	result, err := c.RecommendBuild("mist", Preferences{Playstyle: "aggressive", Complexity: "medium"})
	if err != nil {
		t.Fatal(err)
	}
	// Exact match pays 5 instead of the any-match 2.
	if result.Top.Build != "Crit Carry" || result.Top.Score != 59 {
		t.Errorf("top = %s (%d), want Crit Carry (59)", result.Top.Build, result.Top.Score)
	}
}

func TestRecommendBuild_UnknownCharacter(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	result, err := c.RecommendBuild("nobody", Preferences{Playstyle: "aggressive"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Error == "" {
		t.Fatal("expected error field")
	}
	if len(result.Recommendations) != 0 || result.Top != nil {
		t.Errorf("expected zero recommendations, got %+v", result)
	}
}

func TestAllBuildsSummary(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	summary := c.AllBuildsSummary()
	if summary.TotalBuilds != 3 {
		t.Errorf("total builds = %d, want 3", summary.TotalBuilds)
	}
	if summary.Characters["mist"].BuildCount != 2 || summary.Characters["lacerta"].BuildCount != 1 {
		t.Errorf("character counts = %+v", summary.Characters)
	}
	if len(summary.TopSynergyBuilds) != 3 {
		t.Fatalf("expected 3 ranked builds, got %d", len(summary.TopSynergyBuilds))
	}
	wantOrder := []string{"Crit Carry", "Auto Retaliate", "Frost Warden"}
	for i, want := range wantOrder {
		if summary.TopSynergyBuilds[i].Build != want {
			t.Errorf("rank %d = %s, want %s", i+1, summary.TopSynergyBuilds[i].Build, want)
		}
	}
}

func TestFindBuildsWithEssence(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	usages := c.FindBuildsWithEssence("Essence of Flow")
	if len(usages) != 1 {
		t.Fatalf("expected 1 usage, got %v", usages)
	}
	u := usages[0]
	if u.Character != "mist" || u.Build != "Crit Carry" || u.Memory != "Radiant Lance" {
		t.Errorf("usage = %+v", u)
	}
	if len(u.OtherEssences) != 1 || u.OtherEssences[0] != "Essence of Insight" {
		t.Errorf("other essences = %v", u.OtherEssences)
	}

	if usages := c.FindBuildsWithEssence("Never Slotted"); len(usages) != 0 {
		t.Errorf("expected no usages, got %v", usages)
	}
}

func TestCrossCharacterComparison(t *testing.T) {
	c := New(testutil.NewCatalog(t))

	insights, err := c.CrossCharacterComparison()
	if err != nil {
		t.Fatal(err)
	}
	if len(insights) != 2 {
		t.Fatalf("expected 2 characters, got %v", insights)
	}

	mist := insights["mist"]
	if mist.BuildCount != 2 || mist.MaxScore != 66 || mist.MinScore != 40 {
		t.Errorf("mist insight = %+v", mist)
	}
	if mist.AvgScore != 53 {
		t.Errorf("mist avg = %v, want 53", mist.AvgScore)
	}
	if mist.UncoveredCount != 11 {
		t.Errorf("mist uncovered = %d, want 11", mist.UncoveredCount)
	}

	lacerta := insights["lacerta"]
	if lacerta.BuildCount != 1 || lacerta.MaxScore != 41 || lacerta.MinScore != 41 {
		t.Errorf("lacerta insight = %+v", lacerta)
	}
	if lacerta.UncoveredCount != 12 {
		t.Errorf("lacerta uncovered = %d, want 12", lacerta.UncoveredCount)
	}
}
