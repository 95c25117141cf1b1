package db

import (
	"context"

	"github.com/KromaEnergia/api-vendas/internal/config"
	"gorm.io/gorm"
)

// GetDB conecta usando db.dsn quando informado; senão monta o DSN a partir de
// host/porta/nome e das credenciais (ambiente ou Secrets Manager).
func GetDB(ctx context.Context, cfg config.DBConfig) (*gorm.DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		username, password, err := retrieveCredentials(ctx, cfg)
		if err != nil {
			return nil, err
		}
		port := cfg.Port
		if port == 0 {
			port = 5432 // Default PostgreSQL port
		}
		dsn = MontarDSN(cfg.Host, port, cfg.Name, username, password, cfg.SSLDisable)
	}

	database, err := ConnectDataBase(dsn)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	return database, nil
}
