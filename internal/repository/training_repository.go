package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"trainingdiary/internal/model"
)

type trainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a GORM-backed training repository.
// Exercises and series live in a JSON column of the trainings table.
func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db: db}
}

// Create inserts a new training.
func (r *trainingRepository) Create(ctx context.Context, training *model.Training) error {
	training.Normalize()
	return r.db.WithContext(ctx).Create(training).Error
}

// Save rewrites the whole training row. A row deleted in the meantime is not recreated.
func (r *trainingRepository) Save(ctx context.Context, training *model.Training) error {
	training.Normalize()
	training.UpdatedAt = time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&model.Training{}).
		Where("id = ?", training.ID).
		Select("*").
		Omit("id", "creator", "created_at").
		Updates(training)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports changed rows, so an identical rewrite also affects zero rows.
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Training{}).Where("id = ?", training.ID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID finds a training by ID.
func (r *trainingRepository) FindByID(ctx context.Context, id string) (*model.Training, error) {
	var training model.Training
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&training).Error; err != nil {
		return nil, translate(err)
	}
	training.Normalize()
	return &training, nil
}

// ListByCreator lists the trainings of one user in table order.
func (r *trainingRepository) ListByCreator(ctx context.Context, creator string) ([]model.Training, error) {
	var trainings []model.Training
	if err := r.db.WithContext(ctx).Where("creator = ?", creator).Find(&trainings).Error; err != nil {
		return nil, err
	}
	for i := range trainings {
		trainings[i].Normalize()
	}
	return trainings, nil
}

// Delete removes a training and returns the removed row.
func (r *trainingRepository) Delete(ctx context.Context, id string) (*model.Training, error) {
	var removed model.Training
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&removed).Error; err != nil {
			return translate(err)
		}
		return tx.Delete(&model.Training{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	removed.Normalize()
	return &removed, nil
}
