package repository

import (
	"context"
	"sync"
	"time"

	"trainingdiary/internal/model"
)

// MemoryUserRepository keeps users in process memory. Used for local runs and tests.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string
}

var _ UserRepository = (*MemoryUserRepository)(nil)

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    map[string]*model.User{},
		byEmail: map[string]string{},
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return ErrDuplicate
	}
	if _, ok := r.byID[user.ID]; ok {
		return ErrDuplicate
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	r.byID[user.ID] = user.Clone()
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[user.ID]
	if !ok {
		return ErrNotFound
	}
	if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
		return ErrDuplicate
	}
	delete(r.byEmail, prev.Email)
	user.UpdatedAt = time.Now().UTC()
	r.byID[user.ID] = user.Clone()
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user.Clone(), nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}
