package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/model"
	"trainingdiary/internal/repository"
)

// TrainingService is the ownership-aware CRUD over trainings and their nested
// exercises and series. Every operation is scoped to the calling user: malformed
// ids, missing documents and documents of other users all yield ErrNotFound.
type TrainingService interface {
	CreateTraining(ctx context.Context, caller string, f model.TrainingFields) (*model.Training, error)
	ListTrainings(ctx context.Context, caller string) ([]model.Training, error)
	GetTraining(ctx context.Context, caller, trainingID string) (*model.Training, error)
	DeleteTraining(ctx context.Context, caller, trainingID string) (*model.Training, error)
	UpdateTraining(ctx context.Context, caller, trainingID string, p model.TrainingPatch) (*model.Training, error)

	CreateExercise(ctx context.Context, caller, trainingID string, f model.ExerciseFields) (*model.Training, error)
	DeleteExercise(ctx context.Context, caller, trainingID, exerciseID string) (*model.Training, error)
	UpdateExercise(ctx context.Context, caller, trainingID, exerciseID string, f model.ExerciseFields) (*model.Training, error)

	CreateSeries(ctx context.Context, caller, trainingID, exerciseID string, f model.SeriesFields) (*model.Training, error)
	DeleteSeries(ctx context.Context, caller, trainingID, exerciseID, seriesID string) (*model.Training, error)
	UpdateSeries(ctx context.Context, caller, trainingID, exerciseID, seriesID string, f model.SeriesFields) (*model.Training, error)
}

type trainingService struct {
	repo repository.TrainingRepository
}

// NewTrainingService creates a new training service.
func NewTrainingService(repo repository.TrainingRepository) TrainingService {
	return &trainingService{repo: repo}
}

func (s *trainingService) CreateTraining(ctx context.Context, caller string, f model.TrainingFields) (*model.Training, error) {
	training := model.NewTraining(caller, f)
	if err := training.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, training); err != nil {
		return nil, fmt.Errorf("create training: %w", err)
	}
	return training, nil
}

func (s *trainingService) ListTrainings(ctx context.Context, caller string) ([]model.Training, error) {
	trainings, err := s.repo.ListByCreator(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	if trainings == nil {
		trainings = []model.Training{}
	}
	return trainings, nil
}

func (s *trainingService) GetTraining(ctx context.Context, caller, trainingID string) (*model.Training, error) {
	return s.loadOwned(ctx, caller, trainingID)
}

func (s *trainingService) DeleteTraining(ctx context.Context, caller, trainingID string) (*model.Training, error) {
	if _, err := s.loadOwned(ctx, caller, trainingID); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, trainingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("delete training: %w", err)
	}
	return deleted, nil
}

func (s *trainingService) UpdateTraining(ctx context.Context, caller, trainingID string, p model.TrainingPatch) (*model.Training, error) {
	return s.mutate(ctx, caller, trainingID, func(t *model.Training) error {
		t.Apply(p)
		return nil
	})
}

func (s *trainingService) CreateExercise(ctx context.Context, caller, trainingID string, f model.ExerciseFields) (*model.Training, error) {
	return s.mutate(ctx, caller, trainingID, func(t *model.Training) error {
		t.Exercises = append(t.Exercises, model.NewExercise(f))
		return nil
	})
}

func (s *trainingService) DeleteExercise(ctx context.Context, caller, trainingID, exerciseID string) (*model.Training, error) {
	if !model.IsValidID(exerciseID) {
		return nil, apperrors.ErrNotFound
	}
	return s.mutate(ctx, caller, trainingID, func(t *model.Training) error {
		if !t.RemoveExercise(exerciseID) {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

func (s *trainingService) UpdateExercise(ctx context.Context, caller, trainingID, exerciseID string, f model.ExerciseFields) (*model.Training, error) {
	if !model.IsValidID(exerciseID) {
		return nil, apperrors.ErrNotFound
	}
	return s.mutate(ctx, caller, trainingID, func(t *model.Training) error {
		exercise := t.FindExercise(exerciseID)
		if exercise == nil {
			return apperrors.ErrNotFound
		}
		exercise.Apply(f)
		return nil
	})
}

func (s *trainingService) CreateSeries(ctx context.Context, caller, trainingID, exerciseID string, f model.SeriesFields) (*model.Training, error) {
	if !model.IsValidID(exerciseID) {
		return nil, apperrors.ErrNotFound
	}
	return s.mutate(ctx, caller, trainingID, func(t *model.Training) error {
		exercise := t.FindExercise(exerciseID)
		if exercise == nil {
			return apperrors.ErrNotFound
		}
		exercise.Series = append(exercise.Series, model.NewSeries(f))
		return nil
	})
}

func (s *trainingService) DeleteSeries(ctx context.Context, caller, trainingID, exerciseID, seriesID string) (*model.Training, error) {
	if !model.IsValidID(exerciseID) || !model.IsValidID(seriesID) {
		return nil, apperrors.ErrNotFound
	}
	return s.mutate(ctx, caller, trainingID, func(t *model.Training) error {
		exercise := t.FindExercise(exerciseID)
		if exercise == nil || !exercise.RemoveSeries(seriesID) {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

func (s *trainingService) UpdateSeries(ctx context.Context, caller, trainingID, exerciseID, seriesID string, f model.SeriesFields) (*model.Training, error) {
	if !model.IsValidID(exerciseID) || !model.IsValidID(seriesID) {
		return nil, apperrors.ErrNotFound
	}
	return s.mutate(ctx, caller, trainingID, func(t *model.Training) error {
		exercise := t.FindExercise(exerciseID)
		if exercise == nil {
			return apperrors.ErrNotFound
		}
		series := exercise.FindSeries(seriesID)
		if series == nil {
			return apperrors.ErrNotFound
		}
		series.Apply(f)
		return nil
	})
}

// loadOwned loads a training and hides it from everyone but its creator.
func (s *trainingService) loadOwned(ctx context.Context, caller, trainingID string) (*model.Training, error) {
	if !model.IsValidID(trainingID) {
		return nil, apperrors.ErrNotFound
	}

	training, err := s.repo.FindByID(ctx, trainingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find training: %w", err)
	}
	if training.Creator != caller {
		return nil, apperrors.ErrNotFound
	}
	return training, nil
}

// mutate applies fn to the caller's training, validates the whole aggregate and saves it.
// Nothing is written when fn or validation fails.
func (s *trainingService) mutate(ctx context.Context, caller, trainingID string, fn func(*model.Training) error) (*model.Training, error) {
	training, err := s.loadOwned(ctx, caller, trainingID)
	if err != nil {
		return nil, err
	}

	if err := fn(training); err != nil {
		return nil, err
	}
	if err := training.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, training); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("save training: %w", err)
	}
	return training, nil
}
