package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository defines data access for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{coll: db.Collection("payments")}
}

// Create inserts a payment record.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payment.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}
