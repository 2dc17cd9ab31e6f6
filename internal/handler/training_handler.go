package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trainingdiary/internal/authn"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/model"
	"trainingdiary/internal/service"
)

// TrainingHandler serves trainings and their nested exercises and series.
// Only the caller's own trainings are visible; everything else is a 404.
type TrainingHandler struct {
	svc service.TrainingService
	log logging.Logger
}

// NewTrainingHandler creates a training handler.
func NewTrainingHandler(svc service.TrainingService, log logging.Logger) *TrainingHandler {
	return &TrainingHandler{svc: svc, log: log}
}

// TrainingEnvelope wraps a single training.
type TrainingEnvelope struct {
	Training *model.Training `json:"training"`
}

// TrainingList wraps the caller's trainings.
type TrainingList struct {
	Trainings []model.Training `json:"trainings"`
}

// CreateTraining godoc
// @Summary Create a training
// @Tags trainings
// @Accept json
// @Produce json
// @Security AuthToken
// @Param training body model.TrainingFields true "Training"
// @Success 200 {object} model.Training
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401
// @Router /trainings [post]
func (h *TrainingHandler) CreateTraining(c echo.Context) error {
	var req model.TrainingFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	training, err := h.svc.CreateTraining(c.Request().Context(), caller(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, training)
}

// ListTrainings godoc
// @Summary List the caller's trainings
// @Tags trainings
// @Produce json
// @Security AuthToken
// @Success 200 {object} TrainingList
// @Failure 401
// @Router /trainings [get]
func (h *TrainingHandler) ListTrainings(c echo.Context) error {
	trainings, err := h.svc.ListTrainings(c.Request().Context(), caller(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, TrainingList{Trainings: trainings})
}

// GetTraining godoc
// @Summary Get a training
// @Tags trainings
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Success 200 {object} TrainingEnvelope
// @Failure 404
// @Router /trainings/{trainingId} [get]
func (h *TrainingHandler) GetTraining(c echo.Context) error {
	training, err := h.svc.GetTraining(c.Request().Context(), caller(c), c.Param("trainingId"))
	return h.envelope(c, training, err)
}

// DeleteTraining godoc
// @Summary Delete a training
// @Tags trainings
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Success 200 {object} TrainingEnvelope
// @Failure 404
// @Router /trainings/{trainingId} [delete]
func (h *TrainingHandler) DeleteTraining(c echo.Context) error {
	training, err := h.svc.DeleteTraining(c.Request().Context(), caller(c), c.Param("trainingId"))
	return h.envelope(c, training, err)
}

// UpdateTraining godoc
// @Summary Update a training
// @Description Only date is applied; other fields are ignored.
// @Tags trainings
// @Accept json
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Param training body model.TrainingPatch true "Fields to update"
// @Success 200 {object} TrainingEnvelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404
// @Router /trainings/{trainingId} [patch]
func (h *TrainingHandler) UpdateTraining(c echo.Context) error {
	var req model.TrainingPatch
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	training, err := h.svc.UpdateTraining(c.Request().Context(), caller(c), c.Param("trainingId"), req)
	return h.envelope(c, training, err)
}

// CreateExercise godoc
// @Summary Add an exercise to a training
// @Tags exercises
// @Accept json
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Param exercise body model.ExerciseFields true "Exercise"
// @Success 200 {object} model.Training
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404
// @Router /trainings/{trainingId}/exercises [post]
func (h *TrainingHandler) CreateExercise(c echo.Context) error {
	var req model.ExerciseFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	training, err := h.svc.CreateExercise(c.Request().Context(), caller(c), c.Param("trainingId"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, training)
}

// DeleteExercise godoc
// @Summary Remove an exercise
// @Tags exercises
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Param exerciseId path string true "Exercise ID"
// @Success 200 {object} TrainingEnvelope
// @Failure 404
// @Router /trainings/{trainingId}/exercises/{exerciseId} [delete]
func (h *TrainingHandler) DeleteExercise(c echo.Context) error {
	training, err := h.svc.DeleteExercise(c.Request().Context(), caller(c), c.Param("trainingId"), c.Param("exerciseId"))
	return h.envelope(c, training, err)
}

// UpdateExercise godoc
// @Summary Update an exercise
// @Description Only name and order are applied.
// @Tags exercises
// @Accept json
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Param exerciseId path string true "Exercise ID"
// @Param exercise body model.ExerciseFields true "Fields to update"
// @Success 200 {object} TrainingEnvelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404
// @Router /trainings/{trainingId}/exercises/{exerciseId} [patch]
func (h *TrainingHandler) UpdateExercise(c echo.Context) error {
	var req model.ExerciseFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	training, err := h.svc.UpdateExercise(c.Request().Context(), caller(c), c.Param("trainingId"), c.Param("exerciseId"), req)
	return h.envelope(c, training, err)
}

// CreateSeries godoc
// @Summary Add a series to an exercise
// @Tags series
// @Accept json
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Param exerciseId path string true "Exercise ID"
// @Param series body model.SeriesFields true "Series"
// @Success 200 {object} model.Training
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404
// @Router /trainings/{trainingId}/exercises/{exerciseId}/series [post]
func (h *TrainingHandler) CreateSeries(c echo.Context) error {
	var req model.SeriesFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	training, err := h.svc.CreateSeries(c.Request().Context(), caller(c), c.Param("trainingId"), c.Param("exerciseId"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, training)
}

// DeleteSeries godoc
// @Summary Remove a series
// @Tags series
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Param exerciseId path string true "Exercise ID"
// @Param seriesId path string true "Series ID"
// @Success 200 {object} TrainingEnvelope
// @Failure 404
// @Router /trainings/{trainingId}/exercises/{exerciseId}/series/{seriesId} [delete]
func (h *TrainingHandler) DeleteSeries(c echo.Context) error {
	training, err := h.svc.DeleteSeries(c.Request().Context(), caller(c),
		c.Param("trainingId"), c.Param("exerciseId"), c.Param("seriesId"))
	return h.envelope(c, training, err)
}

// UpdateSeries godoc
// @Summary Update a series
// @Description Only order, repetition and load are applied.
// @Tags series
// @Accept json
// @Produce json
// @Security AuthToken
// @Param trainingId path string true "Training ID"
// @Param exerciseId path string true "Exercise ID"
// @Param seriesId path string true "Series ID"
// @Param series body model.SeriesFields true "Fields to update"
// @Success 200 {object} TrainingEnvelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404
// @Router /trainings/{trainingId}/exercises/{exerciseId}/series/{seriesId} [patch]
func (h *TrainingHandler) UpdateSeries(c echo.Context) error {
	var req model.SeriesFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	training, err := h.svc.UpdateSeries(c.Request().Context(), caller(c),
		c.Param("trainingId"), c.Param("exerciseId"), c.Param("seriesId"), req)
	return h.envelope(c, training, err)
}

func (h *TrainingHandler) envelope(c echo.Context, training *model.Training, err error) error {
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, TrainingEnvelope{Training: training})
}

func caller(c echo.Context) string {
	return authn.CurrentUser(c).ID
}
