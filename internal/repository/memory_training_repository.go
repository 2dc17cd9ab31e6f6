package repository

import (
	"context"
	"sync"
	"time"

	"trainingdiary/internal/model"
)

// MemoryTrainingRepository keeps trainings in process memory, in insertion order.
// Every read and write copies the aggregate so callers never share state with the store.
type MemoryTrainingRepository struct {
	mu    sync.RWMutex
	docs  map[string]*model.Training
	order []string
}

var _ TrainingRepository = (*MemoryTrainingRepository)(nil)

func NewMemoryTrainingRepository() *MemoryTrainingRepository {
	return &MemoryTrainingRepository{docs: map[string]*model.Training{}}
}

func (r *MemoryTrainingRepository) Create(_ context.Context, training *model.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[training.ID]; ok {
		return ErrDuplicate
	}
	now := time.Now().UTC()
	training.CreatedAt, training.UpdatedAt = now, now
	training.Normalize()
	r.docs[training.ID] = training.Clone()
	r.order = append(r.order, training.ID)
	return nil
}

func (r *MemoryTrainingRepository) Save(_ context.Context, training *model.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[training.ID]; !ok {
		return ErrNotFound
	}
	training.UpdatedAt = time.Now().UTC()
	training.Normalize()
	r.docs[training.ID] = training.Clone()
	return nil
}

func (r *MemoryTrainingRepository) FindByID(_ context.Context, id string) (*model.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

func (r *MemoryTrainingRepository) ListByCreator(_ context.Context, creator string) ([]model.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trainings := []model.Training{}
	for _, id := range r.order {
		if doc := r.docs[id]; doc.Creator == creator {
			trainings = append(trainings, *doc.Clone())
		}
	}
	return trainings, nil
}

func (r *MemoryTrainingRepository) Delete(_ context.Context, id string) (*model.Training, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return doc, nil
}

// Count returns the number of stored trainings.
func (r *MemoryTrainingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}
