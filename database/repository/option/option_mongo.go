package optionRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptionRepo implements OptionRepository using MongoDB.
type MongoOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoOptionRepo creates a new instance of OptionRepository using MongoDB.
func NewMongoOptionRepo(db *mongo.Database) OptionRepository {
	return &MongoOptionRepo{coll: db.Collection("appointment-option")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOptionRepo) find(projection bson.M) ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AppointmentOption
	for cursor.Next(ctx) {
		var o models.AppointmentOption
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode appointment option: %w", err)
		}
		results = append(results, o)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading appointment options: %w", err)
	}
	return results, nil
}

// GetAll returns every catalog document with the full slot list.
func (r *MongoOptionRepo) GetAll() ([]models.AppointmentOption, error) {
	return r.find(nil)
}

// GetNames returns the catalog projected to the name field only.
func (r *MongoOptionRepo) GetNames() ([]models.AppointmentOption, error) {
	return r.find(bson.M{"name": 1})
}
