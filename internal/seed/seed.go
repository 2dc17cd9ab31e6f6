// Package seed loads the fixture users and trainings used for local runs and demos.
package seed

import (
	"context"
	"errors"
	"fmt"

	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/model"
	"trainingdiary/internal/service"
)

// FixtureUser is one seeded account.
type FixtureUser struct {
	Email    string
	Password string
}

// Users are the seeded accounts.
var Users = []FixtureUser{
	{Email: "user1@example.com", Password: "userOnePass"},
	{Email: "user2@example.com", Password: "userTwoPass"},
}

// Result reports a seeded user together with a fresh token and the trainings created for it.
type Result struct {
	User      *model.User
	Token     string
	Trainings []*model.Training
}

// Seeder creates fixtures through the regular services, so every seeded
// document passes the same validation as API traffic.
type Seeder struct {
	auth      service.AuthService
	trainings service.TrainingService
	log       logging.Logger
}

// New creates a Seeder.
func New(auth service.AuthService, trainings service.TrainingService, log logging.Logger) *Seeder {
	return &Seeder{auth: auth, trainings: trainings, log: log}
}

// Run seeds both users. Existing users are logged in instead of recreated.
// User one gets a training with one exercise and one series, user two an empty training.
func (s *Seeder) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(Users))
	for i, fu := range Users {
		user, err := s.ensureUser(ctx, fu)
		if err != nil {
			return nil, err
		}

		token, err := s.auth.GenerateAuthToken(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("token for %s: %w", fu.Email, err)
		}

		trainings, err := s.seedTrainings(ctx, user.ID, i == 0)
		if err != nil {
			return nil, fmt.Errorf("training for %s: %w", fu.Email, err)
		}

		s.log.Info(ctx, "seeded user", "email", user.Email, "user_id", user.ID, "trainings", len(trainings))
		results = append(results, Result{User: user, Token: token, Trainings: trainings})
	}
	return results, nil
}

func (s *Seeder) ensureUser(ctx context.Context, fu FixtureUser) (*model.User, error) {
	user, err := s.auth.Register(ctx, fu.Email, fu.Password)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicateEmail) {
		return nil, fmt.Errorf("register %s: %w", fu.Email, err)
	}

	user, err = s.auth.Authenticate(ctx, fu.Email, fu.Password)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", fu.Email, err)
	}
	return user, nil
}

// seedTrainings returns the user's trainings, creating the fixture one
// only when the user has none yet.
func (s *Seeder) seedTrainings(ctx context.Context, userID string, withExercise bool) ([]*model.Training, error) {
	existing, err := s.trainings.ListTrainings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		out := make([]*model.Training, len(existing))
		for i := range existing {
			out[i] = &existing[i]
		}
		return out, nil
	}

	training, err := s.createTraining(ctx, userID, withExercise)
	if err != nil {
		return nil, err
	}
	return []*model.Training{training}, nil
}

func (s *Seeder) createTraining(ctx context.Context, userID string, withExercise bool) (*model.Training, error) {
	date := int64(12345)
	if withExercise {
		date = 1234
	}

	training, err := s.trainings.CreateTraining(ctx, userID, model.TrainingFields{Date: &date})
	if err != nil || !withExercise {
		return training, err
	}

	name, order := "Exercise 1", 1
	training, err = s.trainings.CreateExercise(ctx, userID, training.ID, model.ExerciseFields{Name: &name, Order: &order})
	if err != nil {
		return nil, err
	}

	repetition, load := 10, 15.0
	return s.trainings.CreateSeries(ctx, userID, training.ID, training.Exercises[0].ID,
		model.SeriesFields{Order: &order, Repetition: &repetition, Load: &load})
}
