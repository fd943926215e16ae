// Package mongostore persists principals in MongoDB, one collection per
// kind, with email uniqueness enforced across both.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wishbay/wishbay/pkg/authn"
)

const (
	usersCollection   = "users"
	vendorsCollection = "vendors"
)

// Store implements authn.PrincipalStore on a Mongo database.
type Store struct {
	users   *mongo.Collection
	vendors *mongo.Collection
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a store over the given database.
func New(db *mongo.Database, opts ...Option) *Store {
	s := &Store{
		users:   db.Collection(usersCollection),
		vendors: db.Collection(vendorsCollection),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureIndexes creates the unique email index on both collections. Run once
// at startup; Mongo treats an existing identical index as a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := s.users.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("mongostore: create users email index: %w", err)
	}
	if _, err := s.vendors.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("mongostore: create vendors email index: %w", err)
	}
	return nil
}

func (s *Store) collection(kind authn.Kind) (*mongo.Collection, error) {
	switch kind {
	case authn.KindUser:
		return s.users, nil
	case authn.KindVendor:
		return s.vendors, nil
	default:
		return nil, authn.ErrUnknownKind
	}
}

func (s *Store) FindByEmail(ctx context.Context, kind authn.Kind, email string) (authn.Principal, error) {
	coll, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, coll, kind, bson.M{"email": email})
}

// FindAnyByEmail checks users first, then vendors, mirroring the login
// lookup order.
func (s *Store) FindAnyByEmail(ctx context.Context, email string) (authn.Principal, error) {
	p, err := s.findOne(ctx, s.users, authn.KindUser, bson.M{"email": email})
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, authn.ErrPrincipalNotFound) {
		return nil, err
	}
	return s.findOne(ctx, s.vendors, authn.KindVendor, bson.M{"email": email})
}

func (s *Store) FindByID(ctx context.Context, kind authn.Kind, id uuid.UUID) (authn.Principal, error) {
	coll, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, coll, kind, bson.M{"_id": id})
}

func (s *Store) findOne(ctx context.Context, coll *mongo.Collection, kind authn.Kind, filter bson.M) (authn.Principal, error) {
	res := coll.FindOne(ctx, filter)

	switch kind {
	case authn.KindUser:
		var user authn.User
		if err := res.Decode(&user); err != nil {
			return nil, decodeErr(err)
		}
		return &user, nil
	default:
		var vendor authn.Vendor
		if err := res.Decode(&vendor); err != nil {
			return nil, decodeErr(err)
		}
		return &vendor, nil
	}
}

func decodeErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return authn.ErrPrincipalNotFound
	}
	return fmt.Errorf("mongostore: decode principal: %w", err)
}

func (s *Store) CreateUser(ctx context.Context, user *authn.User) error {
	if err := s.checkEmailFree(ctx, user.Email); err != nil {
		return err
	}

	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return authn.ErrEmailTaken
		}
		return fmt.Errorf("mongostore: insert user: %w", err)
	}
	return nil
}

func (s *Store) CreateVendor(ctx context.Context, vendor *authn.Vendor) error {
	if err := s.checkEmailFree(ctx, vendor.Email); err != nil {
		return err
	}

	now := s.now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	if _, err := s.vendors.InsertOne(ctx, vendor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return authn.ErrEmailTaken
		}
		return fmt.Errorf("mongostore: insert vendor: %w", err)
	}
	return nil
}

// checkEmailFree enforces cross-collection uniqueness. The unique index only
// guards within one collection, so the other one is probed explicitly; the
// race window between probe and insert is accepted, same-collection
// duplicates are still caught by the index.
func (s *Store) checkEmailFree(ctx context.Context, email string) error {
	for _, coll := range []*mongo.Collection{s.users, s.vendors} {
		n, err := coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("mongostore: check email: %w", err)
		}
		if n > 0 {
			return authn.ErrEmailTaken
		}
	}
	return nil
}

func (s *Store) UpdatePasswordHash(ctx context.Context, kind authn.Kind, id uuid.UUID, hash []byte) error {
	coll, err := s.collection(kind)
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"password":   hash,
			"updated_at": s.now(),
		},
	})
	if err != nil {
		return fmt.Errorf("mongostore: update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return authn.ErrPrincipalNotFound
	}
	return nil
}

func (s *Store) MarkEmailVerified(ctx context.Context, kind authn.Kind, id uuid.UUID) error {
	coll, err := s.collection(kind)
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"email_verified": true,
			"updated_at":     s.now(),
		},
	})
	if err != nil {
		return fmt.Errorf("mongostore: mark verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return authn.ErrPrincipalNotFound
	}
	return nil
}
