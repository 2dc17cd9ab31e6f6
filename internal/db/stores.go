package db

import (
	"context"
	"errors"
	"fmt"

	"trainingdiary/internal/config"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/repository"
)

// Stores bundles the repositories of the configured backend.
type Stores struct {
	Users     repository.UserRepository
	Trainings repository.TrainingRepository

	closers []func(context.Context) error
}

// Close releases the backend connections.
func (s *Stores) Close(ctx context.Context) error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c(ctx))
	}
	return errors.Join(errs...)
}

// Open connects the backend selected by cfg.StoreDriver and prepares its schema.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warn(ctx, "using in-memory store, data is lost on exit")
		return &Stores{
			Users:     repository.NewMemoryUserRepository(),
			Trainings: repository.NewMemoryTrainingRepository(),
		}, nil

	case config.StoreMongo:
		client, database, err := NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := PrepareMongo(ctx, database, cfg.ResetDB); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info(ctx, "mongo store ready", "database", cfg.MongoDatabase, "reset", cfg.ResetDB)
		return &Stores{
			Users:     repository.NewMongoUserRepository(database),
			Trainings: repository.NewMongoTrainingRepository(database),
			closers:   []func(context.Context) error{client.Disconnect},
		}, nil

	case config.StoreMySQL:
		gormDB, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		if err := MigrateMySQL(ctx, gormDB, cfg.ResetDB); err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("sql handle: %w", err)
		}
		log.Info(ctx, "mysql store ready", "reset", cfg.ResetDB)
		return &Stores{
			Users:     repository.NewUserRepository(gormDB),
			Trainings: repository.NewTrainingRepository(gormDB),
			closers: []func(context.Context) error{func(context.Context) error {
				return sqlDB.Close()
			}},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
