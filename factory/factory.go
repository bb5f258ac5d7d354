package factory

import (
	"github.com/campusgig/campusgig-backend/internal/config"
	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/campusgig/campusgig-backend/pkg/database"
	"github.com/campusgig/campusgig-backend/pkg/logger"
)

type Repositories struct {
	User *repository.UserRepository
}

type Factory struct {
	DB           *database.PostgresDB
	Logger       *logger.Logger
	Repositories *Repositories
}

func New(cfg *config.Config) (*Factory, func(), error) {
	db, cleanup, err := database.New(cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(cfg)

	userRepo := repository.NewUserRepository(db.DB)

	return &Factory{
			DB:     db,
			Logger: log,
			Repositories: &Repositories{
				User: userRepo,
			},
		}, func() {
			cleanup()
		}, nil
}
