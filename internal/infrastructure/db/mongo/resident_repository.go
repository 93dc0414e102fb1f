package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

const residentsCollection = "residents"

// ResidentRepository persists resident records. List applies the caller's
// scope filter; FindByID is unscoped so the service layer can validate
// ownership against the stored record.
type ResidentRepository struct {
	coll *mongo.Collection
}

func NewResidentRepository(db *mongo.Database) *ResidentRepository {
	return &ResidentRepository{coll: db.Collection(residentsCollection)}
}

func (r *ResidentRepository) Insert(ctx context.Context, resident *domain.Resident) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, resident); err != nil {
		return nil, fmt.Errorf("insert resident: %w", err)
	}
	return resident, nil
}

func (r *ResidentRepository) FindByID(ctx context.Context, id string) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var resident domain.Resident
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&resident); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResidentNotFound
		}
		return nil, fmt.Errorf("find resident: %w", err)
	}
	return &resident, nil
}

func (r *ResidentRepository) List(ctx context.Context, scope domain.Scope, query ports.ResidentQuery) ([]domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	extra := bson.M{}
	if query.Search != "" {
		extra["$or"] = bson.A{
			bson.M{"first_name": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"last_name": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}
	if query.HouseholdID != "" {
		extra["household_id"] = query.HouseholdID
	}
	if query.VotersOnly {
		extra["is_voter"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}})
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}
	if query.Offset > 0 {
		opts.SetSkip(query.Offset)
	}

	cursor, err := r.coll.Find(ctx, scope.Filter(extra), opts)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	defer cursor.Close(ctx)

	var residents []domain.Resident
	if err := cursor.All(ctx, &residents); err != nil {
		return nil, fmt.Errorf("decode residents: %w", err)
	}
	return residents, nil
}

func (r *ResidentRepository) Update(ctx context.Context, resident *domain.Resident) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": resident.ID}, resident)
	if err != nil {
		return fmt.Errorf("update resident: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

func (r *ResidentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete resident: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the residents collection.
func (r *ResidentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "barangay_id", Value: 1}}},
		{Keys: bson.D{{Key: "barangay_id", Value: 1}, {Key: "last_name", Value: 1}}},
		{Keys: bson.D{{Key: "household_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
