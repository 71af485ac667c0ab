// internal/app/store/files/filestore.go
package filestore

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

// ErrNotFound is returned when no file record matches the requested ID.
var ErrNotFound = errors.New("file record not found")

// Store provides access to the files collection, which tracks metadata for
// uploads forwarded to the file-handler upstream.
type Store struct {
	c *mongo.Collection
}

// New creates a new file metadata store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("files")}
}

// Insert records a newly uploaded file and returns it with its assigned ID.
func (s *Store) Insert(ctx context.Context, rec models.FileRecord) (models.FileRecord, error) {
	rec.ID = primitive.NewObjectID()
	if rec.UploadedAt.IsZero() {
		rec.UploadedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return models.FileRecord{}, err
	}
	return rec, nil
}

// ListByUser returns the user's file records, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.FileRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	recs := []models.FileRecord{}
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// GetByID loads one file record. Returns ErrNotFound for an unknown ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FileRecord, error) {
	var rec models.FileRecord
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a file record. Deleting an already-removed record is not
// an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
