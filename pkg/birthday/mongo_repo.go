package birthday

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo keeps records in the birthdays collection keyed by the numeric
// id field, not by _id.
type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("birthdays"),
	}
}

func (r *MongoRepo) GetAll(ctx context.Context) ([]*Birthday, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find birthdays: %w", err)
	}
	defer cursor.Close(ctx)

	list := make([]*Birthday, 0)
	for cursor.Next(ctx) {
		var b Birthday
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode birthday: %w", err)
		}
		list = append(list, &b)
	}
	return list, cursor.Err()
}

func (r *MongoRepo) GetByID(ctx context.Context, id int) (*Birthday, error) {
	var b Birthday
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch birthday %d: %w", id, err)
	}
	return &b, nil
}

func (r *MongoRepo) maxID(ctx context.Context) (int, error) {
	var last Birthday
	err := r.collection.FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}}),
	).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read max id: %w", err)
	}
	return last.ID, nil
}

func (r *MongoRepo) Create(ctx context.Context, in Input) (*Birthday, error) {
	maxID, err := r.maxID(ctx)
	if err != nil {
		return nil, err
	}

	b := in.Build(maxID + 1)
	if _, err := r.collection.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("birthday %d already exists: %w", b.ID, err)
		}
		return nil, fmt.Errorf("failed to insert birthday: %w", err)
	}
	return b, nil
}

func (r *MongoRepo) Update(ctx context.Context, id int, patch Patch) (*Birthday, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	patch.Apply(b)

	res, err := r.collection.ReplaceOne(ctx, bson.M{"id": id}, b)
	if err != nil {
		return nil, fmt.Errorf("failed to replace birthday %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return b, nil
}

func (r *MongoRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete birthday %d: %w", id, err)
	}
	return nil
}
