package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/model"
	"trainingdiary/internal/repository"
)

func fixtureTraining(creator string) *model.Training {
	training := model.NewTraining(creator, model.TrainingFields{Date: ptr(int64(1234))})
	exercise := model.NewExercise(model.ExerciseFields{Name: ptr("Exercise 1"), Order: ptr(1)})
	exercise.Series = append(exercise.Series, model.NewSeries(model.SeriesFields{Order: ptr(1), Repetition: ptr(10), Load: ptr(15.0)}))
	training.Exercises = append(training.Exercises, exercise)
	return training
}

func TestTrainingService_CreateTraining(t *testing.T) {
	caller := model.NewID()

	t.Run("creates owned training", func(t *testing.T) {
		mockRepo := new(MockTrainingRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Training")).Return(nil)

		training, err := NewTrainingService(mockRepo).CreateTraining(context.Background(), caller, model.TrainingFields{Date: ptr(int64(1234))})
		require.NoError(t, err)
		assert.Equal(t, caller, training.Creator)
		assert.Equal(t, int64(1234), *training.Date)
		assert.Empty(t, training.Exercises)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing date never reaches the store", func(t *testing.T) {
		mockRepo := new(MockTrainingRepository)

		_, err := NewTrainingService(mockRepo).CreateTraining(context.Background(), caller, model.TrainingFields{})
		require.Error(t, err)
		assert.Equal(t, "Training validation failed: date: Path `date` is required.", err.Error())
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTrainingService_ListTrainings(t *testing.T) {
	caller := model.NewID()
	mockRepo := new(MockTrainingRepository)
	mockRepo.On("ListByCreator", mock.Anything, caller).Return(nil, nil)

	trainings, err := NewTrainingService(mockRepo).ListTrainings(context.Background(), caller)
	require.NoError(t, err)
	assert.NotNil(t, trainings)
	assert.Empty(t, trainings)
}

func TestTrainingService_GetTraining_Guard(t *testing.T) {
	owner := model.NewID()
	stored := fixtureTraining(owner)

	tests := []struct {
		name       string
		caller     string
		trainingID string
		setupMock  func(*MockTrainingRepository)
		wantErr    error
	}{
		{
			name:       "owner",
			caller:     owner,
			trainingID: stored.ID,
			setupMock: func(m *MockTrainingRepository) {
				m.On("FindByID", mock.Anything, stored.ID).Return(stored.Clone(), nil)
			},
		},
		{
			name:       "malformed id is not looked up",
			caller:     owner,
			trainingID: "random-string",
			setupMock:  func(*MockTrainingRepository) {},
			wantErr:    apperrors.ErrNotFound,
		},
		{
			name:       "missing",
			caller:     owner,
			trainingID: model.NewID(),
			setupMock: func(m *MockTrainingRepository) {
				m.On("FindByID", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:       "other user",
			caller:     model.NewID(),
			trainingID: stored.ID,
			setupMock: func(m *MockTrainingRepository) {
				m.On("FindByID", mock.Anything, stored.ID).Return(stored.Clone(), nil)
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTrainingRepository)
			tt.setupMock(mockRepo)

			got, err := NewTrainingService(mockRepo).GetTraining(context.Background(), tt.caller, tt.trainingID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored.ID, got.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTrainingService_GetTraining_StoreFailure(t *testing.T) {
	mockRepo := new(MockTrainingRepository)
	mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewTrainingService(mockRepo).GetTraining(context.Background(), model.NewID(), model.NewID())
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTrainingService_DeleteTraining(t *testing.T) {
	owner := model.NewID()
	stored := fixtureTraining(owner)

	mockRepo := new(MockTrainingRepository)
	mockRepo.On("FindByID", mock.Anything, stored.ID).Return(stored.Clone(), nil)
	mockRepo.On("Delete", mock.Anything, stored.ID).Return(stored.Clone(), nil)

	deleted, err := NewTrainingService(mockRepo).DeleteTraining(context.Background(), owner, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, deleted.ID)
	mockRepo.AssertExpectations(t)
}

func TestTrainingService_DeleteTraining_OtherUser(t *testing.T) {
	stored := fixtureTraining(model.NewID())

	mockRepo := new(MockTrainingRepository)
	mockRepo.On("FindByID", mock.Anything, stored.ID).Return(stored.Clone(), nil)

	_, err := NewTrainingService(mockRepo).DeleteTraining(context.Background(), model.NewID(), stored.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTrainingService_UpdateTraining(t *testing.T) {
	owner := model.NewID()
	stored := fixtureTraining(owner)

	mockRepo := new(MockTrainingRepository)
	mockRepo.On("FindByID", mock.Anything, stored.ID).Return(stored.Clone(), nil)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(tr *model.Training) bool {
		return *tr.Date == 99 && tr.Creator == owner
	})).Return(nil)

	got, err := NewTrainingService(mockRepo).UpdateTraining(context.Background(), owner, stored.ID, model.TrainingPatch{Date: ptr(int64(99))})
	require.NoError(t, err)
	assert.Equal(t, int64(99), *got.Date)
	assert.Len(t, got.Exercises, 1)
	mockRepo.AssertExpectations(t)
}

func TestTrainingService_CreateExercise(t *testing.T) {
	owner := model.NewID()

	tests := []struct {
		name    string
		fields  model.ExerciseFields
		wantErr string
	}{
		{
			name:   "appends exercise",
			fields: model.ExerciseFields{Name: ptr("Ex1"), Order: ptr(2)},
		},
		{
			name:    "missing name and order",
			fields:  model.ExerciseFields{},
			wantErr: "Training validation failed: exercises.1.order: Path `order` is required., exercises.1.name: Path `name` is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := fixtureTraining(owner)
			mockRepo := new(MockTrainingRepository)
			mockRepo.On("FindByID", mock.Anything, stored.ID).Return(stored.Clone(), nil)
			if tt.wantErr == "" {
				mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Training")).Return(nil)
			}

			got, err := NewTrainingService(mockRepo).CreateExercise(context.Background(), owner, stored.ID, tt.fields)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			require.Len(t, got.Exercises, 2)
			assert.Equal(t, "Ex1", got.Exercises[1].Name)
			assert.True(t, model.IsValidID(got.Exercises[1].ID))
			assert.Empty(t, got.Exercises[1].Series)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTrainingService_NestedNotFound(t *testing.T) {
	owner := model.NewID()
	stored := fixtureTraining(owner)
	exerciseID := stored.Exercises[0].ID
	seriesID := stored.Exercises[0].Series[0].ID
	missing := model.NewID()

	tests := []struct {
		name   string
		lookup bool
		call   func(TrainingService) error
	}{
		{"delete exercise malformed id", false, func(s TrainingService) error {
			_, err := s.DeleteExercise(context.Background(), owner, stored.ID, "bad")
			return err
		}},
		{"delete exercise missing", true, func(s TrainingService) error {
			_, err := s.DeleteExercise(context.Background(), owner, stored.ID, missing)
			return err
		}},
		{"update exercise missing", true, func(s TrainingService) error {
			_, err := s.UpdateExercise(context.Background(), owner, stored.ID, missing, model.ExerciseFields{Name: ptr("x")})
			return err
		}},
		{"create series under missing exercise", true, func(s TrainingService) error {
			_, err := s.CreateSeries(context.Background(), owner, stored.ID, missing, model.SeriesFields{Order: ptr(1), Repetition: ptr(1), Load: ptr(1.0)})
			return err
		}},
		{"delete series malformed id", false, func(s TrainingService) error {
			_, err := s.DeleteSeries(context.Background(), owner, stored.ID, exerciseID, "bad")
			return err
		}},
		{"delete series missing", true, func(s TrainingService) error {
			_, err := s.DeleteSeries(context.Background(), owner, stored.ID, exerciseID, missing)
			return err
		}},
		{"update series under wrong exercise", true, func(s TrainingService) error {
			_, err := s.UpdateSeries(context.Background(), owner, stored.ID, missing, seriesID, model.SeriesFields{Load: ptr(1.0)})
			return err
		}},
		{"update series missing", true, func(s TrainingService) error {
			_, err := s.UpdateSeries(context.Background(), owner, stored.ID, exerciseID, missing, model.SeriesFields{Load: ptr(1.0)})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTrainingRepository)
			if tt.lookup {
				mockRepo.On("FindByID", mock.Anything, stored.ID).Return(stored.Clone(), nil)
			}

			err := tt.call(NewTrainingService(mockRepo))
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			if !tt.lookup {
				mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestTrainingService_SeriesLifecycle(t *testing.T) {
	owner := model.NewID()
	stored := fixtureTraining(owner)
	exerciseID := stored.Exercises[0].ID
	seriesID := stored.Exercises[0].Series[0].ID

	repo := repository.NewMemoryTrainingRepository()
	require.NoError(t, repo.Create(context.Background(), stored))
	service := NewTrainingService(repo)
	ctx := context.Background()

	got, err := service.UpdateSeries(ctx, owner, stored.ID, exerciseID, seriesID, model.SeriesFields{Load: ptr(20.5)})
	require.NoError(t, err)
	assert.Equal(t, 20.5, *got.Exercises[0].Series[0].Load)
	assert.Equal(t, 10, *got.Exercises[0].Series[0].Repetition)

	got, err = service.CreateSeries(ctx, owner, stored.ID, exerciseID, model.SeriesFields{Order: ptr(1), Repetition: ptr(10), Load: ptr(20.5)})
	require.NoError(t, err)
	require.Len(t, got.Exercises[0].Series, 2)
	secondID := got.Exercises[0].Series[1].ID

	got, err = service.DeleteSeries(ctx, owner, stored.ID, exerciseID, seriesID)
	require.NoError(t, err)
	require.Len(t, got.Exercises[0].Series, 1)
	assert.Equal(t, secondID, got.Exercises[0].Series[0].ID)

	_, err = service.CreateSeries(ctx, owner, stored.ID, exerciseID, model.SeriesFields{Order: ptr(2)})
	require.Error(t, err)
	assert.Equal(t, "Training validation failed: exercises.0.series.1.load: Path `load` is required., exercises.0.series.1.repetition: Path `repetition` is required.", err.Error())
	persisted, err := repo.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Len(t, persisted.Exercises[0].Series, 1)
}

// deleteAfterLoad drops each training right after it is read, as a DELETE
// landing between the load and the write of a mutation would.
type deleteAfterLoad struct {
	*repository.MemoryTrainingRepository
}

func (r deleteAfterLoad) FindByID(ctx context.Context, id string) (*model.Training, error) {
	training, err := r.MemoryTrainingRepository.FindByID(ctx, id)
	if err == nil {
		_, _ = r.MemoryTrainingRepository.Delete(ctx, id)
	}
	return training, err
}

func TestTrainingService_MutationAfterConcurrentDelete(t *testing.T) {
	owner := model.NewID()

	tests := []struct {
		name   string
		mutate func(TrainingService, *model.Training) (*model.Training, error)
	}{
		{
			name: "update training",
			mutate: func(s TrainingService, tr *model.Training) (*model.Training, error) {
				return s.UpdateTraining(context.Background(), owner, tr.ID, model.TrainingPatch{Date: ptr(int64(99))})
			},
		},
		{
			name: "create exercise",
			mutate: func(s TrainingService, tr *model.Training) (*model.Training, error) {
				return s.CreateExercise(context.Background(), owner, tr.ID, model.ExerciseFields{Name: ptr("Squat"), Order: ptr(2)})
			},
		},
		{
			name: "delete series",
			mutate: func(s TrainingService, tr *model.Training) (*model.Training, error) {
				return s.DeleteSeries(context.Background(), owner, tr.ID, tr.Exercises[0].ID, tr.Exercises[0].Series[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := fixtureTraining(owner)
			mem := repository.NewMemoryTrainingRepository()
			require.NoError(t, mem.Create(context.Background(), stored))

			got, err := tt.mutate(NewTrainingService(deleteAfterLoad{mem}), stored)
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
			assert.Nil(t, got)
			assert.Equal(t, 0, mem.Count())
			_, err = mem.FindByID(context.Background(), stored.ID)
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	}
}
