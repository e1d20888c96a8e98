package labRepo

import (
	"context"
	"fmt"
	"time"

	"quickscan/database"
	"quickscan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLabRepo implements LabRepository using MongoDB.
type MongoLabRepo struct {
	coll *mongo.Collection
}

// NewMongoLabRepo creates a new instance of LabRepository using MongoDB.
func NewMongoLabRepo() LabRepository {
	repo := &MongoLabRepo{coll: database.Collection("labs")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLabRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoLabRepo) GetByID(id primitive.ObjectID) (*models.Lab, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lab models.Lab
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&lab); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lab %s: %w", id.Hex(), err)
	}
	return &lab, nil
}

func (r *MongoLabRepo) GetAll() ([]models.Lab, error) {
	return r.find(bson.M{})
}

func (r *MongoLabRepo) GetByCity(city string) ([]models.Lab, error) {
	return r.find(bson.M{"city": city})
}

func (r *MongoLabRepo) find(filter bson.M) ([]models.Lab, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list labs: %w", err)
	}
	defer cursor.Close(ctx)

	labs := []models.Lab{}
	if err := cursor.All(ctx, &labs); err != nil {
		return nil, fmt.Errorf("failed to decode labs: %w", err)
	}
	return labs, nil
}
