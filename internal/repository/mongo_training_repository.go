package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"trainingdiary/internal/model"
)

// TrainingsCollection is the MongoDB collection holding trainings.
const TrainingsCollection = "trainings"

type mongoTrainingRepository struct {
	coll *mongo.Collection
}

// NewMongoTrainingRepository builds a MongoDB-backed training repository.
// Each training is one document with its exercises and series embedded.
func NewMongoTrainingRepository(db *mongo.Database) TrainingRepository {
	return &mongoTrainingRepository{coll: db.Collection(TrainingsCollection)}
}

func (r *mongoTrainingRepository) Create(ctx context.Context, training *model.Training) error {
	now := time.Now().UTC()
	training.CreatedAt, training.UpdatedAt = now, now
	training.Normalize()
	_, err := r.coll.InsertOne(ctx, training)
	return err
}

// Save replaces the stored document. A document deleted in the meantime is not recreated.
func (r *mongoTrainingRepository) Save(ctx context.Context, training *model.Training) error {
	training.UpdatedAt = time.Now().UTC()
	training.Normalize()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": training.ID}, training)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTrainingRepository) FindByID(ctx context.Context, id string) (*model.Training, error) {
	var training model.Training
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&training); err != nil {
		return nil, translateMongo(err)
	}
	training.Normalize()
	return &training, nil
}

func (r *mongoTrainingRepository) ListByCreator(ctx context.Context, creator string) ([]model.Training, error) {
	cur, err := r.coll.Find(ctx, bson.M{"creator": creator})
	if err != nil {
		return nil, err
	}
	trainings := []model.Training{}
	if err := cur.All(ctx, &trainings); err != nil {
		return nil, err
	}
	for i := range trainings {
		trainings[i].Normalize()
	}
	return trainings, nil
}

func (r *mongoTrainingRepository) Delete(ctx context.Context, id string) (*model.Training, error) {
	var removed model.Training
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed); err != nil {
		return nil, translateMongo(err)
	}
	removed.Normalize()
	return &removed, nil
}
