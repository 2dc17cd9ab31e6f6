package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"trainingdiary/internal/model"
)

// UsersCollection is the MongoDB collection holding users.
const UsersCollection = "users"

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds a MongoDB-backed user repository.
// A unique index on email is expected (see db.PrepareMongo).
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	if user.Tokens == nil {
		user.Tokens = []model.Token{}
	}
	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *mongoUserRepository) Update(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now().UTC()
	if user.Tokens == nil {
		user.Tokens = []model.Token{}
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translateMongo(err)
	}
	return &user, nil
}

func translateMongo(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
