package analytics

import (
	"fmt"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// Alert is a single severity-tagged message produced by one of the
// threshold rules evaluated over the ticket aggregates.
type Alert struct {
	Level string `json:"level"` // danger, warn or success
	Text  string `json:"text"`
}

// HistogramBucket is one fixed-boundary duration bucket over completed
// tickets.
type HistogramBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TicketStats is the aggregate record derived from a ticket list.
type TicketStats struct {
	Total           int
	Completed       int
	Cancelled       int
	Active          int
	AvgDurationMins float64
	OnTimeRate      float64 // percentage, ties count as on time
	CancelledRate   float64 // percentage over all tickets
	RevenueTotal    float64
	Histogram       []HistogramBucket
	Alerts          []Alert
}

var histogramLabels = []string{"0-10m", "11-15m", "16-20m", "21-30m", "30m+"}

// HistogramBucketIndex maps a completed duration in minutes onto the
// fixed buckets [0,10], [11,15], [16,20], [21,30], (30,inf). Boundaries
// are inclusive on the lower bucket: exactly 10 lands in the first
// bucket, exactly 30 in the fourth.
func HistogramBucketIndex(durationMins int) int {
	switch {
	case durationMins <= 10:
		return 0
	case durationMins <= 15:
		return 1
	case durationMins <= 20:
		return 2
	case durationMins <= 30:
		return 3
	}
	return 4
}

// SummarizeTickets computes the operations aggregate over a ticket
// list. It classifies tickets by their current status only; it never
// performs transitions.
func SummarizeTickets(tickets []models.Ticket) TicketStats {
	stats := TicketStats{Total: len(tickets)}

	counts := make([]int, len(histogramLabels))
	durationSum := 0
	onTime := 0

	for _, t := range tickets {
		stats.RevenueTotal += t.Revenue

		switch {
		case t.Completed():
			stats.Completed++
			durationSum += t.DurationMins
			if t.DurationMins <= t.PromisedMins {
				onTime++
			}
			counts[HistogramBucketIndex(t.DurationMins)]++
		case t.Cancelled():
			stats.Cancelled++
		default:
			stats.Active++
		}
	}

	if stats.Completed > 0 {
		stats.AvgDurationMins = float64(durationSum) / float64(stats.Completed)
		stats.OnTimeRate = float64(onTime) / float64(stats.Completed) * 100
	}
	if stats.Total > 0 {
		stats.CancelledRate = float64(stats.Cancelled) / float64(stats.Total) * 100
	}

	stats.Histogram = make([]HistogramBucket, len(histogramLabels))
	for i, label := range histogramLabels {
		stats.Histogram[i] = HistogramBucket{Label: label, Count: counts[i]}
	}

	stats.Alerts = ticketAlerts(stats)
	return stats
}

// ticketAlerts evaluates the three independent threshold rules. Every
// rule fires exactly one message; there is no short-circuiting between
// them. The cancelled-rate rule intentionally has no danger tier.
func ticketAlerts(stats TicketStats) []Alert {
	alerts := make([]Alert, 0, 3)

	switch {
	case stats.AvgDurationMins > 22:
		alerts = append(alerts, Alert{
			Level: models.AlertLevelDanger,
			Text:  fmt.Sprintf("Avg ticket time %.1f min is well over target", stats.AvgDurationMins),
		})
	case stats.AvgDurationMins > 18:
		alerts = append(alerts, Alert{
			Level: models.AlertLevelWarn,
			Text:  fmt.Sprintf("Avg ticket time %.1f min is creeping up", stats.AvgDurationMins),
		})
	default:
		alerts = append(alerts, Alert{
			Level: models.AlertLevelSuccess,
			Text:  fmt.Sprintf("Avg ticket time %.1f min is on target", stats.AvgDurationMins),
		})
	}

	switch {
	case stats.OnTimeRate < 75:
		alerts = append(alerts, Alert{
			Level: models.AlertLevelDanger,
			Text:  fmt.Sprintf("On-time rate %.1f%% is below 75%%", stats.OnTimeRate),
		})
	case stats.OnTimeRate < 90:
		alerts = append(alerts, Alert{
			Level: models.AlertLevelWarn,
			Text:  fmt.Sprintf("On-time rate %.1f%% is below 90%%", stats.OnTimeRate),
		})
	default:
		alerts = append(alerts, Alert{
			Level: models.AlertLevelSuccess,
			Text:  fmt.Sprintf("On-time rate %.1f%% is holding", stats.OnTimeRate),
		})
	}

	if stats.CancelledRate > 10 {
		alerts = append(alerts, Alert{
			Level: models.AlertLevelWarn,
			Text:  fmt.Sprintf("Cancellation rate %.1f%% is above 10%%", stats.CancelledRate),
		})
	} else {
		alerts = append(alerts, Alert{
			Level: models.AlertLevelSuccess,
			Text:  fmt.Sprintf("Cancellation rate %.1f%% is under control", stats.CancelledRate),
		})
	}

	return alerts
}

// LateTickets returns the completed tickets that blew their promise,
// in input order. Presentation helper for the operations screen.
func LateTickets(tickets []models.Ticket) []models.Ticket {
	var late []models.Ticket
	for _, t := range tickets {
		if t.Late() {
			late = append(late, t)
		}
	}
	return late
}
