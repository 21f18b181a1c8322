package analytics

import (
	"testing"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completed(promised, duration int, revenue float64) models.Ticket {
	return models.Ticket{
		Status:       models.TicketStatusCompleted,
		PromisedMins: promised,
		DurationMins: duration,
		Revenue:      revenue,
	}
}

func TestHistogramBucketIndex(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{0, 0},
		{5, 0},
		{10, 0}, // boundary stays in the first bucket
		{11, 1},
		{15, 1},
		{16, 2},
		{20, 2},
		{21, 3},
		{30, 3}, // boundary stays in the fourth bucket
		{31, 4},
		{120, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HistogramBucketIndex(tt.duration), "duration %d", tt.duration)
	}
}

func TestSummarizeTicketsCounts(t *testing.T) {
	tickets := []models.Ticket{
		completed(20, 12, 100),
		completed(20, 25, 50),
		{Status: models.TicketStatusCancelled, Revenue: 0},
		{Status: models.TicketStatusPending, Revenue: 30},
		{Status: models.TicketStatusReady, Revenue: 20},
	}

	stats := SummarizeTickets(tickets)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 2, stats.Active)
	assert.InDelta(t, 18.5, stats.AvgDurationMins, 1e-9)
	assert.InDelta(t, 50, stats.OnTimeRate, 1e-9)
	assert.InDelta(t, 20, stats.CancelledRate, 1e-9)

	// Revenue sums over every ticket regardless of status.
	assert.InDelta(t, 200, stats.RevenueTotal, 1e-9)
}

func TestSummarizeTicketsOnTimeTie(t *testing.T) {
	// Duration exactly equal to the promise counts as on time, and the
	// same ticket must land in the 16-20m bucket.
	stats := SummarizeTickets([]models.Ticket{completed(18, 18, 10)})

	assert.InDelta(t, 100, stats.OnTimeRate, 1e-9)
	require.Len(t, stats.Histogram, 5)
	assert.Equal(t, "16-20m", stats.Histogram[2].Label)
	assert.Equal(t, 1, stats.Histogram[2].Count)
}

func TestSummarizeTicketsHistogramPartition(t *testing.T) {
	tickets := []models.Ticket{
		completed(30, 3, 0),
		completed(30, 10, 0),
		completed(30, 14, 0),
		completed(30, 19, 0),
		completed(30, 30, 0),
		completed(30, 47, 0),
		{Status: models.TicketStatusCancelled},
		{Status: models.TicketStatusInProgress, DurationMins: 99},
	}

	stats := SummarizeTickets(tickets)
	sum := 0
	for _, b := range stats.Histogram {
		sum += b.Count
	}
	// Only completed tickets are bucketed, and each exactly once.
	assert.Equal(t, stats.Completed, sum)
}

func TestSummarizeTicketsEmpty(t *testing.T) {
	stats := SummarizeTickets(nil)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AvgDurationMins)
	assert.Zero(t, stats.OnTimeRate)
	assert.Zero(t, stats.CancelledRate)
	require.Len(t, stats.Histogram, 5)
	require.Len(t, stats.Alerts, 3)
}

func TestTicketAlerts(t *testing.T) {
	tests := []struct {
		name  string
		stats TicketStats
		want  []string
	}{
		{
			name:  "all healthy",
			stats: TicketStats{AvgDurationMins: 15, OnTimeRate: 95, CancelledRate: 4},
			want:  []string{models.AlertLevelSuccess, models.AlertLevelSuccess, models.AlertLevelSuccess},
		},
		{
			name:  "avg warn band",
			stats: TicketStats{AvgDurationMins: 19, OnTimeRate: 95, CancelledRate: 4},
			want:  []string{models.AlertLevelWarn, models.AlertLevelSuccess, models.AlertLevelSuccess},
		},
		{
			name:  "avg danger band",
			stats: TicketStats{AvgDurationMins: 23, OnTimeRate: 95, CancelledRate: 4},
			want:  []string{models.AlertLevelDanger, models.AlertLevelSuccess, models.AlertLevelSuccess},
		},
		{
			name:  "on-time warn band",
			stats: TicketStats{AvgDurationMins: 15, OnTimeRate: 80, CancelledRate: 4},
			want:  []string{models.AlertLevelSuccess, models.AlertLevelWarn, models.AlertLevelSuccess},
		},
		{
			name:  "on-time danger band",
			stats: TicketStats{AvgDurationMins: 15, OnTimeRate: 60, CancelledRate: 4},
			want:  []string{models.AlertLevelSuccess, models.AlertLevelDanger, models.AlertLevelSuccess},
		},
		{
			name:  "cancelled caps at warn",
			stats: TicketStats{AvgDurationMins: 15, OnTimeRate: 95, CancelledRate: 60},
			want:  []string{models.AlertLevelSuccess, models.AlertLevelSuccess, models.AlertLevelWarn},
		},
		{
			name:  "boundaries are exclusive",
			stats: TicketStats{AvgDurationMins: 18, OnTimeRate: 90, CancelledRate: 10},
			want:  []string{models.AlertLevelSuccess, models.AlertLevelSuccess, models.AlertLevelSuccess},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := ticketAlerts(tt.stats)
			require.Len(t, alerts, 3)
			for i, level := range tt.want {
				assert.Equal(t, level, alerts[i].Level)
				assert.NotEmpty(t, alerts[i].Text)
			}
		})
	}
}

func TestLateTickets(t *testing.T) {
	late := completed(15, 20, 0)
	tickets := []models.Ticket{
		completed(15, 15, 0), // tie is on time
		late,
		{Status: models.TicketStatusInProgress, PromisedMins: 10, DurationMins: 50},
	}

	got := LateTickets(tickets)
	require.Len(t, got, 1)
	assert.Equal(t, late, got[0])
}
