package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"trainingdiary/internal/auth"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/model"
	"trainingdiary/internal/repository"
	"trainingdiary/internal/service"
)

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	trainings := repository.NewMemoryTrainingRepository()
	tokens := auth.NewTokenService("test-secret")

	seeder := New(
		service.NewAuthService(users, tokens, nil, bcrypt.MinCost),
		service.NewTrainingService(trainings),
		logging.Discard(),
	)

	results, err := seeder.Run(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)

	one := results[0]
	assert.Equal(t, "user1@example.com", one.User.Email)
	claims, err := tokens.Verify(one.Token)
	require.NoError(t, err)
	assert.Equal(t, one.User.ID, claims.UserID)

	require.Len(t, one.Trainings, 1)
	tr := one.Trainings[0]
	assert.Equal(t, int64(1234), *tr.Date)
	require.Len(t, tr.Exercises, 1)
	assert.Equal(t, "Exercise 1", tr.Exercises[0].Name)
	require.Len(t, tr.Exercises[0].Series, 1)
	assert.Equal(t, 15.0, *tr.Exercises[0].Series[0].Load)

	two := results[1]
	assert.Equal(t, int64(12345), *two.Trainings[0].Date)
	assert.Empty(t, two.Trainings[0].Exercises)
	assert.Equal(t, 2, trainings.Count())

	// seeding again logs the existing users in and keeps their trainings
	again, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, one.User.ID, again[0].User.ID)
	assert.Equal(t, 2, trainings.Count())
	require.Len(t, again[0].Trainings, 1)
	assert.Equal(t, tr.ID, again[0].Trainings[0].ID)
	require.Len(t, again[1].Trainings, 1)
	assert.Equal(t, two.Trainings[0].ID, again[1].Trainings[0].ID)

	stored, err := users.FindByID(ctx, one.User.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasToken(model.AccessAuth, one.Token))
	assert.True(t, stored.HasToken(model.AccessAuth, again[0].Token))
}
