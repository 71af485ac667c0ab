// internal/app/store/preferences/prefstore.go
package prefstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/pitwall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by Get when the user has no preferences document.
// A miss is a normal outcome, not a fault; default-filling happens at the
// feature layer, never here.
var ErrNotFound = errors.New("preferences not found")

// Store provides access to the preferences collection.
// Each user has at most one document, keyed by user_id.
type Store struct {
	c *mongo.Collection
}

// New creates a new preferences store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("preferences")}
}

// Get loads the preferences document for userID.
// Returns ErrNotFound when no document exists.
func (s *Store) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	var p models.UserPreferences
	err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert merges the supplied fields into the user's document, creating it if
// absent, and returns the resulting full document.
//
// The whole merge is a single FindOneAndUpdate so concurrent upserts for the
// same user cannot interleave: updated_at is set on every write, created_at
// only on insert and never overwritten afterwards. Unsupplied fields of upd
// are left untouched. The store does not dedupe favorite_teams; that is the
// writer's job.
func (s *Store) Upsert(ctx context.Context, userID string, upd models.PreferencesUpdate) (*models.UserPreferences, error) {
	now := time.Now().UTC()

	set := bson.M{
		"user_id":    userID,
		"updated_at": now,
	}
	if upd.FavoriteTeams != nil {
		set["favorite_teams"] = *upd.FavoriteTeams
	}
	if upd.Notifications != nil {
		set["notifications"] = *upd.Notifications
	}
	if upd.Theme != nil {
		set["theme"] = *upd.Theme
	}
	if upd.MeasurementUnits != nil {
		set["measurement_units"] = *upd.MeasurementUnits
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var p models.UserPreferences
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
