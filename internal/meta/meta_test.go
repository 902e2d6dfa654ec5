package meta

import (
	"testing"

	"github.com/quillfox/dreambuild/internal/model"
	"github.com/quillfox/dreambuild/internal/testutil"
)

func TestGenerate(t *testing.T) {
	cat := testutil.NewCatalog(t)

	report, err := Generate(cat)
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalBuilds != 3 {
		t.Errorf("total builds = %d, want 3", report.TotalBuilds)
	}
	if report.TotalEssences != 10 {
		t.Errorf("total essences = %d, want 10", report.TotalEssences)
	}
	// Passive-only Perfection does not count as used.
	if report.UsedEssences != 8 {
		t.Errorf("used essences = %d, want 8", report.UsedEssences)
	}
	wantUnused := []string{"Essence of Pain", "Perfection"}
	if len(report.UnusedEssences) != len(wantUnused) {
		t.Fatalf("unused = %v, want %v", report.UnusedEssences, wantUnused)
	}
	for i, want := range wantUnused {
		if report.UnusedEssences[i] != want {
			t.Errorf("unused[%d] = %q, want %q", i, report.UnusedEssences[i], want)
		}
	}
}

func TestGenerate_UsageOrdering(t *testing.T) {
	cat := testutil.NewCatalog(t)

	report, err := Generate(cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.MostUsed) != 8 {
		t.Fatalf("most used = %d entries, want 8", len(report.MostUsed))
	}
	// Every essence appears once, so ordering falls back to name.
	if report.MostUsed[0].Essence != "Essence of Clemency" || report.MostUsed[0].Count != 1 {
		t.Errorf("first most-used = %+v", report.MostUsed[0])
	}
	if report.MostUsed[7].Essence != "Glacial Core" {
		t.Errorf("last most-used = %+v", report.MostUsed[7])
	}
	// All counts are at or below the least-used threshold here.
	if len(report.LeastUsed) != 8 {
		t.Errorf("least used = %d entries, want 8", len(report.LeastUsed))
	}
}

func TestGenerate_Pairs(t *testing.T) {
	cat := testutil.NewCatalog(t)

	report, err := Generate(cat)
	if err != nil {
		t.Fatal(err)
	}
	// 6 pairs out of the four-essence build plus one pair from each of
	// the two-essence builds.
	if len(report.MostCommonPairs) != 8 {
		t.Fatalf("pairs = %d, want 8", len(report.MostCommonPairs))
	}
	first := report.MostCommonPairs[0]
	if first.Pair != [2]string{"Essence of Clemency", "Glacial Core"} || first.Count != 1 {
		t.Errorf("first pair = %+v", first)
	}
	last := report.MostCommonPairs[7]
	if last.Pair != [2]string{"Essence of Momentum", "Essence of Paranoia"} {
		t.Errorf("last pair = %+v", last)
	}
}

func TestGenerate_RarityBuckets(t *testing.T) {
	cat := testutil.NewCatalog(t)

	report, err := Generate(cat)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]RarityUsage{
		model.RarityLegendary: {Used: 3, TotalUses: 3},
		model.RarityEpic:      {Used: 3, TotalUses: 3},
		model.RarityRare:      {Used: 2, TotalUses: 2},
	}
	if len(report.UsageByRarity) != len(want) {
		t.Fatalf("rarity buckets = %+v", report.UsageByRarity)
	}
	for tier, bucket := range want {
		if report.UsageByRarity[tier] != bucket {
			t.Errorf("%s bucket = %+v, want %+v", tier, report.UsageByRarity[tier], bucket)
		}
	}
}

func TestGenerate_CountsRepeatUse(t *testing.T) {
	cat := testutil.NewCatalog(t)
	if _, err := cat.SaveCustomBuild("mist", &model.Build{
		Name:      "Second Flow",
		Concept:   "c",
		Playstyle: "p",
		Memories: []model.MemorySlot{
			{Name: "Radiant Lance", Essences: []string{"Essence of Flow", "Essence of Insight"}},
		},
	}); err != nil {
		t.Fatal(err)
	}

	report, err := Generate(cat)
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalBuilds != 4 {
		t.Errorf("total builds = %d, want 4", report.TotalBuilds)
	}
	// Flow and Insight now lead with two uses each.
	if report.MostUsed[0].Essence != "Essence of Flow" || report.MostUsed[0].Count != 2 {
		t.Errorf("first most-used = %+v", report.MostUsed[0])
	}
	if report.MostUsed[1].Essence != "Essence of Insight" || report.MostUsed[1].Count != 2 {
		t.Errorf("second most-used = %+v", report.MostUsed[1])
	}
	if report.MostCommonPairs[0].Pair != [2]string{"Essence of Flow", "Essence of Insight"} ||
		report.MostCommonPairs[0].Count != 2 {
		t.Errorf("first pair = %+v", report.MostCommonPairs[0])
	}
}
