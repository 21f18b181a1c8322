package source

import (
	"context"
	"fmt"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/AlexanderBarlow/catering-any/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres reads the three entity sets from a reporting replica. It is
// strictly read-only: the dashboard never owns persistence, it only
// ingests what the upstream system already wrote.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ store.Source = (*Postgres)(nil)

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to reporting replica: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging reporting replica: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) Tickets(ctx context.Context) ([]models.Ticket, error) {
	rows, err := p.pool.Query(ctx, `
        SELECT id, customer, created_at, promised_mins,
               COALESCE(duration_mins, 0), status, item_count, revenue
        FROM tickets
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("querying tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.Customer, &t.CreatedAt, &t.PromisedMins,
			&t.DurationMins, &t.Status, &t.ItemCount, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scanning ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (p *Postgres) Items(ctx context.Context) ([]models.CatalogItem, error) {
	rows, err := p.pool.Query(ctx, `
        SELECT id, name, category, active, price, cost, qty_sold, updated_at
        FROM catalog_items
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("querying catalog items: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var it models.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Active,
			&it.Price, &it.Cost, &it.QtySold, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *Postgres) Users(ctx context.Context) ([]models.UserAccount, error) {
	rows, err := p.pool.Query(ctx, `
        SELECT id, COALESCE(name, ''), email, role, active, created_at
        FROM users
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []models.UserAccount
	for rows.Next() {
		var u models.UserAccount
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Active, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *Postgres) CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	return models.CatalogItem{}, store.ErrReadOnly
}

func (p *Postgres) UpdateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	return models.CatalogItem{}, store.ErrReadOnly
}

func (p *Postgres) DeleteItem(ctx context.Context, id string) error {
	return store.ErrReadOnly
}

func (p *Postgres) CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, string, error) {
	return models.UserAccount{}, "", store.ErrReadOnly
}

func (p *Postgres) UpdateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error) {
	return models.UserAccount{}, store.ErrReadOnly
}

func (p *Postgres) DeleteUser(ctx context.Context, id string) error {
	return store.ErrReadOnly
}
