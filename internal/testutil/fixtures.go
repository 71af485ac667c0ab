package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/pitwall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreatePreferences inserts a fully populated preferences document for
// userID and returns it.
func (f *Fixtures) CreatePreferences(ctx context.Context, userID string, teams []string) models.UserPreferences {
	f.t.Helper()

	now := time.Now().UTC()
	prefs := models.UserPreferences{
		ID:               primitive.NewObjectID(),
		UserID:           userID,
		FavoriteTeams:    teams,
		Notifications:    true,
		Theme:            models.ThemeDark,
		MeasurementUnits: models.UnitsImperial,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := f.db.Collection("preferences").InsertOne(ctx, prefs)
	if err != nil {
		f.t.Fatalf("failed to create test preferences: %v", err)
	}

	return prefs
}

// CreateFileRecord inserts a file metadata record for userID and returns it.
func (f *Fixtures) CreateFileRecord(ctx context.Context, userID, filename, storageKey string) models.FileRecord {
	f.t.Helper()

	rec := models.FileRecord{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		FileName:   filename,
		StorageKey: storageKey,
		Size:       1024,
		URL:        "https://files.example.com/" + storageKey,
		UploadedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("files").InsertOne(ctx, rec)
	if err != nil {
		f.t.Fatalf("failed to create test file record: %v", err)
	}

	return rec
}
