package source

import (
	"context"
	"fmt"

	"github.com/AlexanderBarlow/catering-any/internal/api"
	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/AlexanderBarlow/catering-any/internal/store"
)

// FromConfig selects the data source the whole app runs against. The
// restClient is only consulted for the "rest" source and may be nil
// otherwise.
func FromConfig(ctx context.Context, cfg *models.Config, restClient *api.Client) (store.Source, error) {
	switch cfg.Source {
	case "", "mock":
		return NewMock(int64(cfg.Seed), cfg.MockTickets, cfg.MockItems, cfg.MockUsers), nil
	case "rest":
		if restClient == nil {
			return nil, fmt.Errorf("rest source requires api_base to be configured")
		}
		return NewREST(restClient), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres source requires postgres_dsn to be configured")
		}
		return NewPostgres(ctx, cfg.PostgresDSN)
	}
	return nil, fmt.Errorf("unknown source %q (want mock, rest or postgres)", cfg.Source)
}
