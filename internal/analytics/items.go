package analytics

import (
	"sort"
	"strings"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// CategoryAll is the wildcard category filter value.
const CategoryAll = "All"

// ItemFilter is the compound filter state for the catalog screen. The
// three predicates are a strict conjunction.
type ItemFilter struct {
	Search     string
	Category   string // exact category, or CategoryAll
	ActiveOnly bool
}

// ItemSummary is the aggregate over the *filtered* item set.
type ItemSummary struct {
	Revenue          float64
	Cost             float64
	Profit           float64
	AvgMarginPercent float64
}

// Margin quality bands for per-row display.
const (
	MarginBandGood    = "good"    // >= 45%
	MarginBandCaution = "caution" // >= 25%
	MarginBandPoor    = "poor"    // < 25%
)

// MarginBand classifies a margin percentage for display.
func MarginBand(pct float64) string {
	switch {
	case pct >= 45:
		return MarginBandGood
	case pct >= 25:
		return MarginBandCaution
	}
	return MarginBandPoor
}

// FilterItems applies the filter conjunction and returns the matches
// ordered by descending period revenue (price * qty sold). The sort is
// stable so equal-revenue items keep their prior relative order. The
// input slice is never mutated.
func FilterItems(items []models.CatalogItem, filter ItemFilter) []models.CatalogItem {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		if filter.ActiveOnly && !it.Active {
			continue
		}
		if filter.Category != "" && filter.Category != CategoryAll && it.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		filtered = append(filtered, it)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PeriodRevenue() > filtered[j].PeriodRevenue()
	})
	return filtered
}

// SummarizeItems computes the period totals over an already-filtered
// item set. AvgMarginPercent is 0 whenever revenue is 0.
func SummarizeItems(items []models.CatalogItem) ItemSummary {
	var summary ItemSummary
	for _, it := range items {
		summary.Revenue += it.PeriodRevenue()
		summary.Cost += it.PeriodCost()
	}
	summary.Profit = summary.Revenue - summary.Cost
	if summary.Revenue != 0 {
		summary.AvgMarginPercent = summary.Profit / summary.Revenue * 100
	}
	return summary
}

// TopItems returns the first n items of an already-sorted filtered
// list, for the dashboard's top sellers card.
func TopItems(sorted []models.CatalogItem, n int) []models.CatalogItem {
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
