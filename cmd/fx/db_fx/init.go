package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gymguru/internal/config"
	"gymguru/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.DB, cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database",
		zap.String("host", cfg.DB.Host),
		zap.String("database", cfg.DB.Name))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.ClosePostgresql(db, logger)
		},
	})
	return db, nil
}
