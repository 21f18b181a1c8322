package models

const (
	TicketStatusPending    = "PENDING"
	TicketStatusInProgress = "IN_PROGRESS"
	TicketStatusReady      = "READY"
	TicketStatusCompleted  = "COMPLETED"
	TicketStatusCancelled  = "CANCELLED"

	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"

	CategoryEntree  = "Entree"
	CategorySide    = "Side"
	CategoryDrink   = "Drink"
	CategoryDessert = "Dessert"
	CategorySauce   = "Sauce"
	CategoryOther   = "Other"

	NoteTagStaffing = "Staffing"
	NoteTagQuality  = "Quality"
	NoteTagOps      = "Ops"
	NoteTagSupply   = "Supply"

	AlertLevelDanger  = "danger"
	AlertLevelWarn    = "warn"
	AlertLevelSuccess = "success"
)

// ItemCategories lists every valid catalog category, in display order.
var ItemCategories = []string{
	CategoryEntree,
	CategorySide,
	CategoryDrink,
	CategoryDessert,
	CategorySauce,
	CategoryOther,
}

// NoteTags lists every valid shift note tag.
var NoteTags = []string{
	NoteTagStaffing,
	NoteTagQuality,
	NoteTagOps,
	NoteTagSupply,
}
