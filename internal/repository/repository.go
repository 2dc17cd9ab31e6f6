package repository

import (
	"context"
	"errors"

	"trainingdiary/internal/model"
)

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key (user email) is already taken.
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// TrainingRepository defines training persistence operations.
// Save always writes the whole aggregate, exercises and series included.
type TrainingRepository interface {
	Create(ctx context.Context, training *model.Training) error
	Save(ctx context.Context, training *model.Training) error
	FindByID(ctx context.Context, id string) (*model.Training, error)
	ListByCreator(ctx context.Context, creator string) ([]model.Training, error)
	Delete(ctx context.Context, id string) (*model.Training, error)
}
