package models

import "time"

type Ticket struct {
	ID           string    `json:"id"`
	Customer     string    `json:"customer"`
	CreatedAt    time.Time `json:"created_at"`
	PromisedMins int       `json:"promised_mins"` // SLA target in minutes
	DurationMins int       `json:"duration_mins"` // meaningful only once completed
	Status       string    `json:"status"`        // PENDING, IN_PROGRESS, READY, COMPLETED, CANCELLED
	ItemCount    int       `json:"item_count"`
	Revenue      float64   `json:"revenue"`
}

// Completed reports whether the ticket reached its terminal success state.
func (t Ticket) Completed() bool {
	return t.Status == TicketStatusCompleted
}

// Cancelled reports whether the ticket was cancelled.
func (t Ticket) Cancelled() bool {
	return t.Status == TicketStatusCancelled
}

// Active reports whether the ticket is still in flight
// (pending, in progress or ready).
func (t Ticket) Active() bool {
	switch t.Status {
	case TicketStatusPending, TicketStatusInProgress, TicketStatusReady:
		return true
	}
	return false
}

// Late reports whether a completed ticket blew its promised duration.
// A duration exactly equal to the promise counts as on time.
func (t Ticket) Late() bool {
	return t.Completed() && t.DurationMins > t.PromisedMins
}
