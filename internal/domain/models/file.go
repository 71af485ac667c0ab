// internal/domain/models/file.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileRecord is the metadata kept for a file a user uploaded through the
// gateway. The bytes themselves live behind the file-handler upstream; this
// document only tracks ownership and the storage key needed to delete it.
type FileRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"-"`
	FileName   string             `bson:"file_name" json:"filename"`
	StorageKey string             `bson:"storage_key" json:"-"`
	Size       int64              `bson:"size" json:"size"`
	URL        string             `bson:"url" json:"url"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploadDate"`
}
