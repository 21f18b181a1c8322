package factories

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// Fixtures generates plausible sample entities for the mock data
// source. The same seed always yields the same data set.
type Fixtures struct {
	fake faker.Faker
	rng  *rand.Rand
	now  time.Time
}

func New(seed int64) *Fixtures {
	return &Fixtures{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
		now:  time.Now(),
	}
}

var menuNames = map[string][]string{
	models.CategoryEntree: {
		"Chicken Sandwich", "Spicy Chicken Sandwich", "Grilled Cool Wrap",
		"Nugget Tray (Large)", "Nugget Tray (Small)", "Grilled Chicken Club",
		"Smoked Brisket Plate", "Pulled Pork Slider Tray",
	},
	models.CategorySide: {
		"Waffle Fries", "Mac and Cheese Tray", "Fruit Cup", "Side Salad",
		"Kale Crunch Side", "Garlic Bread Basket",
	},
	models.CategoryDrink: {
		"Gallon Sweet Tea", "Gallon Unsweet Tea", "Gallon Lemonade",
		"Iced Coffee Carafe", "Bottled Water Case",
	},
	models.CategoryDessert: {
		"Cookie", "Cookie Tray", "Brownie Tray", "Peach Cobbler Pan",
		"Milkshake Flight",
	},
	models.CategorySauce: {
		"Signature Sauce Tub", "Honey Mustard Tub", "BBQ Sauce Tub",
		"Ranch Tub",
	},
	models.CategoryOther: {
		"Plates and Cutlery Kit", "Chafing Setup", "Delivery Fee",
	},
}

// Items generates up to n catalog items with unique names.
func (f *Fixtures) Items(n int) []models.CatalogItem {
	type entry struct {
		name     string
		category string
	}
	var pool []entry
	for _, category := range models.ItemCategories {
		for _, name := range menuNames[category] {
			pool = append(pool, entry{name, category})
		}
	}
	f.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}

	items := make([]models.CatalogItem, n)
	for i := 0; i < n; i++ {
		price := f.fake.Float64(2, 2, 90)
		costRatio := 0.2 + f.rng.Float64()*0.45
		items[i] = models.CatalogItem{
			ID:        cuid.New(),
			Name:      pool[i].name,
			Category:  pool[i].category,
			Active:    f.rng.Float64() > 0.15,
			Price:     price,
			Cost:      roundCents(price * costRatio),
			QtySold:   f.rng.Intn(120),
			UpdatedAt: f.fake.Time().TimeBetween(f.now.AddDate(0, -1, 0), f.now),
		}
	}
	return items
}

// Tickets generates n operational tickets spread over the last week,
// weighted towards completed ones so the aggregates have substance.
func (f *Fixtures) Tickets(n int) []models.Ticket {
	tickets := make([]models.Ticket, n)
	for i := 0; i < n; i++ {
		promised := 10 + f.rng.Intn(21) // 10 to 30 minutes
		t := models.Ticket{
			ID:           cuid.New(),
			Customer:     f.fake.Person().Name(),
			CreatedAt:    f.fake.Time().TimeBetween(f.now.AddDate(0, 0, -7), f.now),
			PromisedMins: promised,
			ItemCount:    1 + f.rng.Intn(8),
		}

		roll := f.rng.Float64()
		switch {
		case roll < 0.62:
			t.Status = models.TicketStatusCompleted
			t.DurationMins = 5 + f.rng.Intn(35)
			t.Revenue = roundCents(20 + f.rng.Float64()*380)
		case roll < 0.70:
			t.Status = models.TicketStatusCancelled
			// cancelled tickets typically carry no revenue
		case roll < 0.80:
			t.Status = models.TicketStatusPending
			t.Revenue = roundCents(20 + f.rng.Float64()*380)
		case roll < 0.92:
			t.Status = models.TicketStatusInProgress
			t.Revenue = roundCents(20 + f.rng.Float64()*380)
		default:
			t.Status = models.TicketStatusReady
			t.Revenue = roundCents(20 + f.rng.Float64()*380)
		}
		tickets[i] = t
	}
	return tickets
}

// Users generates n accounts with unique emails. The first account is
// always an active admin so the directory has a protected row.
func (f *Fixtures) Users(n int) []models.UserAccount {
	users := make([]models.UserAccount, 0, n)
	for i := 0; i < n; i++ {
		name := f.fake.Person().Name()
		role := models.RoleStaff
		if i == 0 {
			name = "Site Admin"
			role = models.RoleAdmin
		} else if f.rng.Float64() < 0.3 {
			role = models.RoleManager
		}
		users = append(users, models.UserAccount{
			ID:        cuid.New(),
			Name:      name,
			Email:     uniqueEmail(name, i),
			Role:      role,
			Active:    i == 0 || f.rng.Float64() > 0.1,
			CreatedAt: f.fake.Time().TimeBetween(f.now.AddDate(-1, 0, 0), f.now),
		})
	}
	return users
}

// TempPassword generates the one-time password the mock source hands
// back on user creation.
func (f *Fixtures) TempPassword() string {
	return f.fake.Internet().Password()
}

func uniqueEmail(name string, i int) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, slug)
	return fmt.Sprintf("%s.%d@catering.example", slug, i)
}

func roundCents(n float64) float64 {
	return float64(int(n*100+0.5)) / 100
}
