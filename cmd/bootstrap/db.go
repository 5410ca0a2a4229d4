package bootstrap

import (
	"context"
	"log/slog"

	"smart-parking/internal/infra/db"
	"smart-parking/internal/infra/memstore"
	sqlc "smart-parking/internal/infra/sqlc/generated"
	"smart-parking/internal/infra/uow"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork picks the store from STORE_DRIVER. The pool is only opened
// for the postgres driver.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		slog.Warn("using in-memory store, occupancy is lost on restart")
		return memstore.NewUnitOfWork(memstore.NewStore()), nil
	default:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		return uow.NewPostgresUoW(pool, sqlc.New()), nil
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
