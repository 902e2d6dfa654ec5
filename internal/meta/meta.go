// Package meta aggregates cross-catalog essence usage statistics.
package meta

import (
	"sort"

	"github.com/quillfox/dreambuild/internal/catalog"
)

// UsageCount tallies one essence's appearances across all builds.
type UsageCount struct {
	Essence string `json:"essence"`
	Count   int    `json:"count"`
}

// PairCount tallies how many builds slot two essences together.
type PairCount struct {
	Pair  [2]string `json:"pair"`
	Count int       `json:"count"`
}

// RarityUsage buckets usage by rarity tier.
type RarityUsage struct {
	Used      int `json:"used"`
	TotalUses int `json:"total_uses"`
}

// Report is the catalog-wide essence usage analysis.
type Report struct {
	TotalBuilds     int                    `json:"total_builds"`
	TotalEssences   int                    `json:"total_essences"`
	UsedEssences    int                    `json:"used_essences"`
	UnusedEssences  []string               `json:"unused_essences"`
	MostUsed        []UsageCount           `json:"most_used"`
	LeastUsed       []UsageCount           `json:"least_used"`
	MostCommonPairs []PairCount            `json:"most_common_pairs"`
	UsageByRarity   map[string]RarityUsage `json:"usage_by_rarity"`
}

// Generate scans every build in the catalog once: per-essence usage,
// unordered pair co-occurrence (once per build), unused reference
// essences, and per-rarity usage. Usage counts cover active memory
// essences; passives carry no slot and are excluded.
func Generate(cat *catalog.Catalog) (*Report, error) {
	essences, err := cat.Essences()
	if err != nil {
		return nil, err
	}
	rarity, err := cat.RarityMap()
	if err != nil {
		return nil, err
	}

	usage := make(map[string]int)
	cooccurrence := make(map[[2]string]int)
	totalBuilds := 0

	for _, builds := range cat.AllBuilds() {
		totalBuilds += len(builds)
		for _, b := range builds {
			inBuild := make(map[string]bool)
			for _, slot := range b.Memories {
				for _, e := range slot.Essences {
					usage[e]++
					inBuild[e] = true
				}
			}

			names := make([]string, 0, len(inBuild))
			for e := range inBuild {
				names = append(names, e)
			}
			sort.Strings(names)
			for i, first := range names {
				for _, second := range names[i+1:] {
					cooccurrence[[2]string{first, second}]++
				}
			}
		}
	}

	report := &Report{
		TotalBuilds:   totalBuilds,
		TotalEssences: len(essences),
		UsedEssences:  len(usage),
		UsageByRarity: make(map[string]RarityUsage),
	}

	for _, e := range essences {
		if usage[e.Name] == 0 {
			report.UnusedEssences = append(report.UnusedEssences, e.Name)
		}
	}
	sort.Strings(report.UnusedEssences)

	sorted := make([]UsageCount, 0, len(usage))
	for name, count := range usage {
		sorted = append(sorted, UsageCount{Essence: name, Count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Essence < sorted[j].Essence
	})

	report.MostUsed = head(sorted, 15)
	for _, uc := range sorted {
		if uc.Count <= 2 {
			report.LeastUsed = append(report.LeastUsed, uc)
		}
	}

	pairs := make([]PairCount, 0, len(cooccurrence))
	for pair, count := range cooccurrence {
		pairs = append(pairs, PairCount{Pair: pair, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].Pair[0] != pairs[j].Pair[0] {
			return pairs[i].Pair[0] < pairs[j].Pair[0]
		}
		return pairs[i].Pair[1] < pairs[j].Pair[1]
	})
	report.MostCommonPairs = headPairs(pairs, 10)

	for name, count := range usage {
		tier, ok := rarity[name]
		if !ok {
			tier = "Unknown"
		}
		bucket := report.UsageByRarity[tier]
		bucket.Used++
		bucket.TotalUses += count
		report.UsageByRarity[tier] = bucket
	}

	return report, nil
}

func head(list []UsageCount, n int) []UsageCount {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func headPairs(list []PairCount, n int) []PairCount {
	if len(list) > n {
		return list[:n]
	}
	return list
}
