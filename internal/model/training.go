package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Series is one set of an exercise.
type Series struct {
	ID         string   `json:"_id" bson:"_id"`
	Order      *int     `json:"order" bson:"order"`
	Repetition *int     `json:"repetition" bson:"repetition"`
	Load       *float64 `json:"load" bson:"load"`
}

// Exercise is an ordered entry of a training. It is only addressable through its training.
type Exercise struct {
	ID     string   `json:"_id" bson:"_id"`
	Name   string   `json:"name" bson:"name"`
	Order  *int     `json:"order" bson:"order"`
	Series []Series `json:"series" bson:"series"`
}

// Training is the aggregate root: exercises and their series are always
// persisted by rewriting the whole document.
type Training struct {
	ID        string                        `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Creator   string                        `json:"creator" bson:"creator" gorm:"type:char(36);not null;index"`
	Date      *int64                        `json:"date" bson:"date" gorm:"not null"`
	Duration  *int64                        `json:"duration,omitempty" bson:"duration,omitempty"`
	Exercises datatypes.JSONSlice[Exercise] `json:"exercises" bson:"exercises" gorm:"type:json;not null"`
	CreatedAt time.Time                     `json:"-" bson:"createdAt"`
	UpdatedAt time.Time                     `json:"-" bson:"updatedAt"`
}

// TrainingFields are the client supplied fields of a new training.
type TrainingFields struct {
	Date     *int64 `json:"date"`
	Duration *int64 `json:"duration"`
}

// TrainingPatch lists the training fields a client may update.
type TrainingPatch struct {
	Date *int64 `json:"date"`
}

// ExerciseFields are the client supplied exercise fields, for creation and update.
type ExerciseFields struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

// SeriesFields are the client supplied series fields, for creation and update.
type SeriesFields struct {
	Order      *int     `json:"order"`
	Repetition *int     `json:"repetition"`
	Load       *float64 `json:"load"`
}

// NewTraining builds a training owned by creator. It is not validated.
func NewTraining(creator string, f TrainingFields) *Training {
	return &Training{
		ID:        NewID(),
		Creator:   creator,
		Date:      f.Date,
		Duration:  f.Duration,
		Exercises: datatypes.JSONSlice[Exercise]{},
	}
}

// NewExercise builds an exercise with a fresh id and no series.
func NewExercise(f ExerciseFields) Exercise {
	e := Exercise{ID: NewID(), Series: []Series{}}
	e.Apply(f)
	return e
}

// NewSeries builds a series with a fresh id.
func NewSeries(f SeriesFields) Series {
	s := Series{ID: NewID()}
	s.Apply(f)
	return s
}

// Apply merges the patch onto t. Absent fields are left untouched.
func (t *Training) Apply(p TrainingPatch) {
	if p.Date != nil {
		t.Date = p.Date
	}
}

// Apply merges f onto e. Names are stored trimmed.
func (e *Exercise) Apply(f ExerciseFields) {
	if f.Name != nil {
		e.Name = strings.TrimSpace(*f.Name)
	}
	if f.Order != nil {
		e.Order = f.Order
	}
}

// Apply merges f onto s.
func (s *Series) Apply(f SeriesFields) {
	if f.Order != nil {
		s.Order = f.Order
	}
	if f.Repetition != nil {
		s.Repetition = f.Repetition
	}
	if f.Load != nil {
		s.Load = f.Load
	}
}

// FindExercise returns a pointer into t.Exercises, or nil.
func (t *Training) FindExercise(id string) *Exercise {
	for i := range t.Exercises {
		if t.Exercises[i].ID == id {
			return &t.Exercises[i]
		}
	}
	return nil
}

// RemoveExercise removes the exercise with the given id. It reports whether it was found.
func (t *Training) RemoveExercise(id string) bool {
	for i := range t.Exercises {
		if t.Exercises[i].ID == id {
			t.Exercises = append(t.Exercises[:i], t.Exercises[i+1:]...)
			return true
		}
	}
	return false
}

// FindSeries returns a pointer into e.Series, or nil.
func (e *Exercise) FindSeries(id string) *Series {
	for i := range e.Series {
		if e.Series[i].ID == id {
			return &e.Series[i]
		}
	}
	return nil
}

// RemoveSeries removes the series with the given id. It reports whether it was found.
func (e *Exercise) RemoveSeries(id string) bool {
	for i := range e.Series {
		if e.Series[i].ID == id {
			e.Series = append(e.Series[:i], e.Series[i+1:]...)
			return true
		}
	}
	return false
}

// Normalize replaces nil collections with empty ones so they serialize as [].
func (t *Training) Normalize() {
	if t.Exercises == nil {
		t.Exercises = datatypes.JSONSlice[Exercise]{}
	}
	for i := range t.Exercises {
		if t.Exercises[i].Series == nil {
			t.Exercises[i].Series = []Series{}
		}
	}
}

// Clone returns a deep copy of t.
func (t *Training) Clone() *Training {
	c := *t
	c.Date = clonePtr(t.Date)
	c.Duration = clonePtr(t.Duration)
	c.Exercises = make(datatypes.JSONSlice[Exercise], len(t.Exercises))
	for i, e := range t.Exercises {
		ec := e
		ec.Order = clonePtr(e.Order)
		ec.Series = make([]Series, len(e.Series))
		for j, s := range e.Series {
			ec.Series[j] = Series{
				ID:         s.ID,
				Order:      clonePtr(s.Order),
				Repetition: clonePtr(s.Repetition),
				Load:       clonePtr(s.Load),
			}
		}
		c.Exercises[i] = ec
	}
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
