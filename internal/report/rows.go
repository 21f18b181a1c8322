package report

import (
	"fmt"

	"github.com/AlexanderBarlow/catering-any/internal/analytics"
	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// TicketRow is one exported ticket. Parquet tags drive the parquet
// schema; json tags drive the json lines output.
type TicketRow struct {
	ID           string  `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Customer     string  `json:"customer" parquet:"name=customer,type=BYTE_ARRAY,convertedtype=UTF8"`
	CreatedAt    int64   `json:"createdAt" parquet:"name=createdAt,type=INT64"`
	PromisedMins int32   `json:"promisedMins" parquet:"name=promisedMins,type=INT32"`
	DurationMins int32   `json:"durationMins" parquet:"name=durationMins,type=INT32"`
	Status       string  `json:"status" parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemCount    int32   `json:"itemCount" parquet:"name=itemCount,type=INT32"`
	Revenue      float64 `json:"revenue" parquet:"name=revenue,type=DOUBLE"`
	Late         bool    `json:"late" parquet:"name=late,type=BOOLEAN"`
}

// ItemRow is one exported catalog item with its derived margin fields.
type ItemRow struct {
	ID            string  `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name          string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category      string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	Active        bool    `json:"active" parquet:"name=active,type=BOOLEAN"`
	Price         float64 `json:"price" parquet:"name=price,type=DOUBLE"`
	Cost          float64 `json:"cost" parquet:"name=cost,type=DOUBLE"`
	QtySold       int32   `json:"qtySold" parquet:"name=qtySold,type=INT32"`
	PeriodRevenue float64 `json:"periodRevenue" parquet:"name=periodRevenue,type=DOUBLE"`
	MarginPercent float64 `json:"marginPercent" parquet:"name=marginPercent,type=DOUBLE"`
	MarginBand    string  `json:"marginBand" parquet:"name=marginBand,type=BYTE_ARRAY,convertedtype=UTF8"`
}

func ticketRow(t models.Ticket) TicketRow {
	duration := t.DurationMins
	if !t.Completed() {
		// duration is only meaningful once completed
		duration = 0
	}
	return TicketRow{
		ID:           t.ID,
		Customer:     t.Customer,
		CreatedAt:    t.CreatedAt.UnixMilli(),
		PromisedMins: int32(t.PromisedMins),
		DurationMins: int32(duration),
		Status:       t.Status,
		ItemCount:    int32(t.ItemCount),
		Revenue:      t.Revenue,
		Late:         t.Late(),
	}
}

func itemRow(it models.CatalogItem) ItemRow {
	margin := analytics.MarginPercent(it.Price, it.Cost)
	return ItemRow{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Active:        it.Active,
		Price:         it.Price,
		Cost:          it.Cost,
		QtySold:       int32(it.QtySold),
		PeriodRevenue: it.PeriodRevenue(),
		MarginPercent: margin,
		MarginBand:    analytics.MarginBand(margin),
	}
}

var ticketHeaders = []string{
	"id", "customer", "createdAt", "promisedMins", "durationMins",
	"status", "itemCount", "revenue", "late",
}

func (r TicketRow) record() []string {
	return []string{
		r.ID, r.Customer,
		fmt.Sprintf("%d", r.CreatedAt),
		fmt.Sprintf("%d", r.PromisedMins),
		fmt.Sprintf("%d", r.DurationMins),
		r.Status,
		fmt.Sprintf("%d", r.ItemCount),
		fmt.Sprintf("%.2f", r.Revenue),
		fmt.Sprintf("%t", r.Late),
	}
}

var itemHeaders = []string{
	"id", "name", "category", "active", "price", "cost",
	"qtySold", "periodRevenue", "marginPercent", "marginBand",
}

func (r ItemRow) record() []string {
	return []string{
		r.ID, r.Name, r.Category,
		fmt.Sprintf("%t", r.Active),
		fmt.Sprintf("%.2f", r.Price),
		fmt.Sprintf("%.2f", r.Cost),
		fmt.Sprintf("%d", r.QtySold),
		fmt.Sprintf("%.2f", r.PeriodRevenue),
		fmt.Sprintf("%.1f", r.MarginPercent),
		r.MarginBand,
	}
}
