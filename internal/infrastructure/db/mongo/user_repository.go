package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bms-ph/records-system/internal/core/domain"
)

const (
	usersCollection     = "users"
	barangaysCollection = "barangays"
)

// UserRepository persists user accounts. Lookups join the bound barangay's
// active flag in a single aggregation so the identity resolver sees account
// and tenant status together.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Email        string              `bson:"email"`
	FirstName    string              `bson:"first_name"`
	LastName     string              `bson:"last_name"`
	PasswordHash string              `bson:"password_hash"`
	Role         string              `bson:"role"`
	BarangayID   string              `bson:"barangay_id,omitempty"`
	Status       string              `bson:"status"`
	LastSeenAt   int64               `bson:"last_seen_at,omitempty"`
	CreatedAt    int64               `bson:"created_at"`
	UpdatedAt    int64               `bson:"updated_at"`
	Barangay     []mongoUserBarangay `bson:"barangay,omitempty"`
}

type mongoUserBarangay struct {
	Active bool `bson:"active"`
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPrincipalNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// findOne runs the match plus the barangay $lookup and maps the first result.
func (r *UserRepository) findOne(ctx context.Context, match bson.M) (*domain.User, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         barangaysCollection,
			"localField":   "barangay_id",
			"foreignField": "_id",
			"as":           "barangay",
		}}},
		bson.D{{Key: "$limit", Value: 1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrPrincipalNotFound
	}

	return toDomainUser(docs[0]), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		BarangayID:   user.BarangayID,
		Status:       string(user.Status),
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get the id and the joined barangay flag
	created, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// TouchLastSeen stamps activity. Best-effort: callers may drop the error.
func (r *UserRepository) TouchLastSeen(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPrincipalNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"last_seen_at": at.Unix()}})
	if err != nil {
		return fmt.Errorf("touch last seen: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPrincipalNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "barangay_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainUser(mu mongoUser) *domain.User {
	u := &domain.User{
		ID:           mu.ID.Hex(),
		Email:        mu.Email,
		FirstName:    mu.FirstName,
		LastName:     mu.LastName,
		PasswordHash: mu.PasswordHash,
		Role:         domain.Role(mu.Role),
		BarangayID:   mu.BarangayID,
		Status:       domain.AccountStatus(mu.Status),
		LastSeenAt:   unixToTime(mu.LastSeenAt),
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
	if len(mu.Barangay) > 0 {
		u.BarangayActive = mu.Barangay[0].Active
	}
	return u
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
