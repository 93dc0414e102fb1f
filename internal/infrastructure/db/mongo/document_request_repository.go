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

const documentRequestsCollection = "document_requests"

type DocumentRequestRepository struct {
	coll *mongo.Collection
}

func NewDocumentRequestRepository(db *mongo.Database) *DocumentRequestRepository {
	return &DocumentRequestRepository{coll: db.Collection(documentRequestsCollection)}
}

func (r *DocumentRequestRepository) Insert(ctx context.Context, dr *domain.DocumentRequest) (*domain.DocumentRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, dr); err != nil {
		return nil, fmt.Errorf("insert document request: %w", err)
	}
	return dr, nil
}

func (r *DocumentRequestRepository) FindByID(ctx context.Context, id string) (*domain.DocumentRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var dr domain.DocumentRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&dr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentRequestNotFound
		}
		return nil, fmt.Errorf("find document request: %w", err)
	}
	return &dr, nil
}

func (r *DocumentRequestRepository) List(ctx context.Context, scope domain.Scope, query ports.DocumentRequestQuery) ([]domain.DocumentRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	extra := bson.M{}
	if query.Status != "" {
		extra["status"] = query.Status
	}
	if query.RequestedBy != "" {
		extra["requested_by"] = query.RequestedBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}
	if query.Offset > 0 {
		opts.SetSkip(query.Offset)
	}

	cursor, err := r.coll.Find(ctx, scope.Filter(extra), opts)
	if err != nil {
		return nil, fmt.Errorf("list document requests: %w", err)
	}
	defer cursor.Close(ctx)

	var drs []domain.DocumentRequest
	if err := cursor.All(ctx, &drs); err != nil {
		return nil, fmt.Errorf("decode document requests: %w", err)
	}
	return drs, nil
}

func (r *DocumentRequestRepository) Update(ctx context.Context, dr *domain.DocumentRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": dr.ID}, dr)
	if err != nil {
		return fmt.Errorf("update document request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDocumentRequestNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the document requests collection.
func (r *DocumentRequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "barangay_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "requested_by", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
