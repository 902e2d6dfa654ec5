package archetype

import (
	"math"
	"testing"

	"github.com/quillfox/dreambuild/internal/model"
	"github.com/quillfox/dreambuild/internal/testutil"
)

func TestClassify(t *testing.T) {
	cat := testutil.NewCatalog(t)

	tags := Classify(cat.BuildsFor("mist")[0], false) // Crit Carry
	if len(tags) != 1 || tags[0] != "damage_burst" {
		t.Errorf("Crit Carry tags = %v, want [damage_burst]", tags)
	}

	tags = Classify(cat.BuildsFor("mist")[1], false) // Frost Warden
	if len(tags) != 1 || tags[0] != "tank" {
		t.Errorf("Frost Warden tags = %v, want [tank]", tags)
	}

	tags = Classify(cat.BuildsFor("lacerta")[0], false) // Auto Retaliate
	if len(tags) != 1 || tags[0] != "automation" {
		t.Errorf("Auto Retaliate tags = %v, want [automation]", tags)
	}
}

func TestClassify_SingleKeywordIsNotEnough(t *testing.T) {
	b := &model.Build{
		Name:      "Walker",
		Concept:   "A build about fire",
		Playstyle: "Careful",
	}
	if tags := Classify(b, false); len(tags) != 0 {
		t.Errorf("one keyword hit should not tag, got %v", tags)
	}
}

func TestClassify_StrategyText(t *testing.T) {
	b := &model.Build{
		Name:      "Quiet",
		Concept:   "Placeholder",
		Playstyle: "Flexible",
		Strategy:  "Summon a minion pack and let companions fight",
	}
	if tags := Classify(b, false); len(tags) != 0 {
		t.Errorf("strategy text must be excluded without the flag, got %v", tags)
	}
	tags := Classify(b, true)
	if len(tags) != 1 || tags[0] != "summoner" {
		t.Errorf("strategy text should tag summoner, got %v", tags)
	}
}

func TestGapAnalysis(t *testing.T) {
	cat := testutil.NewCatalog(t)

	report := GapAnalysis(cat, "mist")
	if report == nil {
		t.Fatal("expected report for known character")
	}
	if report.TotalBuilds != 2 {
		t.Errorf("total builds = %d, want 2", report.TotalBuilds)
	}
	if len(report.Covered) != 2 {
		t.Fatalf("covered = %v, want damage_burst and tank", report.Covered)
	}
	if cov, ok := report.Covered["damage_burst"]; !ok || len(cov.Builds) != 1 || cov.Builds[0] != "Crit Carry" {
		t.Errorf("damage_burst coverage = %+v", cov)
	}
	if cov, ok := report.Covered["tank"]; !ok || len(cov.Builds) != 1 || cov.Builds[0] != "Frost Warden" {
		t.Errorf("tank coverage = %+v", cov)
	}
	if len(report.Uncovered) != len(Taxonomy)-2 {
		t.Errorf("uncovered = %d archetypes, want %d", len(report.Uncovered), len(Taxonomy)-2)
	}
	wantPct := float64(2) / float64(len(Taxonomy)) * 100
	if math.Abs(report.CoveragePct-wantPct) > 1e-9 {
		t.Errorf("coverage pct = %v, want %v", report.CoveragePct, wantPct)
	}
}

func TestGapAnalysis_UnknownCharacter(t *testing.T) {
	cat := testutil.NewCatalog(t)
	if report := GapAnalysis(cat, "nobody"); report != nil {
		t.Errorf("expected nil for unknown character, got %+v", report)
	}
}
