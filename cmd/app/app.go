package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festivalhub/festivalhub-api/internal/api"
	"github.com/festivalhub/festivalhub-api/internal/config"
	"github.com/festivalhub/festivalhub-api/internal/db"
	"github.com/festivalhub/festivalhub-api/internal/logger"
	"github.com/festivalhub/festivalhub-api/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	gormDB, err := openDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	s := api.NewServer(conf, gormDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openDatabase picks the backing store once at boot. DATABASE_URL wins,
// then the configured Postgres host, otherwise an in-memory SQLite store
// for local development.
func openDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	if conf.Postgres.Host != "" {
		return db.OpenPostgres(conf.Postgres)
	}

	zap.L().Warn("no Postgres configured, falling back to in-memory SQLite")

	return db.OpenSQLite(conf.SQLite.Path)
}
