package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trainingdiary/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTrainingRepository is a mock implementation of TrainingRepository.
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) Create(ctx context.Context, training *model.Training) error {
	args := m.Called(ctx, training)
	return args.Error(0)
}

func (m *MockTrainingRepository) Save(ctx context.Context, training *model.Training) error {
	args := m.Called(ctx, training)
	return args.Error(0)
}

func (m *MockTrainingRepository) FindByID(ctx context.Context, id string) (*model.Training, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Training), args.Error(1)
}

func (m *MockTrainingRepository) ListByCreator(ctx context.Context, creator string) ([]model.Training, error) {
	args := m.Called(ctx, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Training), args.Error(1)
}

func (m *MockTrainingRepository) Delete(ctx context.Context, id string) (*model.Training, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Training), args.Error(1)
}

func ptr[T any](v T) *T { return &v }
