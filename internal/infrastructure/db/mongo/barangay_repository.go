package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bms-ph/records-system/internal/core/domain"
)

type BarangayRepository struct {
	coll *mongo.Collection
}

func NewBarangayRepository(db *mongo.Database) *BarangayRepository {
	return &BarangayRepository{coll: db.Collection(barangaysCollection)}
}

func (r *BarangayRepository) Create(ctx context.Context, b *domain.Barangay) (*domain.Barangay, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("insert barangay: %w", err)
	}
	return b, nil
}

func (r *BarangayRepository) FindByID(ctx context.Context, id string) (*domain.Barangay, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Barangay
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBarangayNotFound
		}
		return nil, fmt.Errorf("find barangay: %w", err)
	}
	return &b, nil
}

func (r *BarangayRepository) List(ctx context.Context) ([]domain.Barangay, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list barangays: %w", err)
	}
	defer cursor.Close(ctx)

	var barangays []domain.Barangay
	if err := cursor.All(ctx, &barangays); err != nil {
		return nil, fmt.Errorf("decode barangays: %w", err)
	}
	return barangays, nil
}

func (r *BarangayRepository) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"active":     active,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update barangay: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBarangayNotFound
	}
	return nil
}
