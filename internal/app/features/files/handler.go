// internal/app/features/files/handler.go
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	filestore "github.com/dalemusser/pitwall/internal/app/store/files"
	"github.com/dalemusser/pitwall/internal/app/system/identity"
	"github.com/dalemusser/pitwall/internal/app/system/jsonutil"
	"github.com/dalemusser/pitwall/internal/app/system/timeouts"
	"github.com/dalemusser/pitwall/internal/app/system/upstream"
	"github.com/dalemusser/pitwall/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// maxUploadBytes caps multipart uploads.
const maxUploadBytes = 32 << 20

// Handler serves the file endpoints: metadata listing, upload, delete.
// File bytes live behind the file-handler upstream; only metadata is kept
// locally.
type Handler struct {
	Files    *filestore.Store
	Upstream *upstream.FileClient
	Log      *zap.Logger
}

// NewHandler constructs a files Handler.
func NewHandler(files *filestore.Store, client *upstream.FileClient, logger *zap.Logger) *Handler {
	return &Handler{Files: files, Upstream: client, Log: logger}
}

// ServeList handles GET /api/files, returning the user's upload metadata,
// newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.CurrentUserID(r)
	if !ok {
		jsonutil.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Store)
	defer cancel()

	recs, err := h.Files.ListByUser(ctx, userID)
	if err != nil {
		h.Log.Error("file list failed", zap.String("user_id", userID), zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to fetch files")
		return
	}

	jsonutil.Write(w, http.StatusOK, recs)
}

// ServeUpload handles POST /api/files/upload.
//
// The multipart "file" part is forwarded to the file-handler upstream under
// a unique storage name; on success the upload is recorded in the metadata
// collection. Upstream failure propagates; there is no partial mode.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.CurrentUserID(r)
	if !ok {
		jsonutil.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	// Oversized uploads are rejected outright; forwarding a truncated
	// file would record a size that does not match the stored bytes.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonutil.Error(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		jsonutil.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		jsonutil.Error(w, http.StatusBadRequest, `missing "file" part`)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		jsonutil.Error(w, http.StatusBadRequest, "could not read file")
		return
	}

	// Unique storage name: uuid prefix avoids collisions between users
	// uploading the same filename.
	storageName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(header.Filename))

	result, err := h.Upstream.Upload(r.Context(), data, storageName, userID)
	if err != nil {
		h.Log.Error("file upload failed", zap.String("user_id", userID), zap.Error(err))
		jsonutil.Error(w, http.StatusBadGateway, "Failed to upload file")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Store)
	defer cancel()

	rec, err := h.Files.Insert(ctx, models.FileRecord{
		UserID:     userID,
		FileName:   header.Filename,
		StorageKey: result.FileID,
		Size:       int64(len(data)),
		URL:        result.URL,
	})
	if err != nil {
		// The upstream holds the bytes but the metadata write failed; the
		// record is orphaned upstream rather than invisible locally.
		h.Log.Error("file metadata insert failed",
			zap.String("user_id", userID), zap.String("file_key", result.FileID), zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to record file")
		return
	}

	jsonutil.Write(w, http.StatusOK, map[string]string{
		"message": "File uploaded successfully",
		"fileId":  rec.ID.Hex(),
		"url":     result.URL,
	})
}

// ServeDelete handles DELETE /api/files/{fileID}.
//
// The record must exist and belong to the acting user. The upstream delete
// runs before the metadata is removed, so a failed upstream call never
// leaves an untracked stored object.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.CurrentUserID(r)
	if !ok {
		jsonutil.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "fileID"))
	if err != nil {
		jsonutil.Error(w, http.StatusBadRequest, "invalid file id")
		return
	}

	lookupCtx, cancelLookup := context.WithTimeout(r.Context(), timeouts.Store)
	defer cancelLookup()

	rec, err := h.Files.GetByID(lookupCtx, id)
	if err == filestore.ErrNotFound {
		jsonutil.Error(w, http.StatusNotFound, "file not found")
		return
	}
	if err != nil {
		h.Log.Error("file lookup failed", zap.String("file_id", id.Hex()), zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}
	if rec.UserID != userID {
		jsonutil.Error(w, http.StatusForbidden, "file belongs to another user")
		return
	}

	if err := h.Upstream.Delete(r.Context(), rec.StorageKey, userID); err != nil {
		h.Log.Error("file delete failed",
			zap.String("user_id", userID), zap.String("file_key", rec.StorageKey), zap.Error(err))
		jsonutil.Error(w, http.StatusBadGateway, "Failed to delete file")
		return
	}

	// The store budget starts after the upstream call, and the context is
	// detached from the caller: the object is already gone upstream, so
	// the metadata removal must not inherit a context the slow upstream
	// call (or a client disconnect) may have exhausted.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), timeouts.Store)
	defer cancel()

	if err := h.Files.Delete(ctx, id); err != nil {
		h.Log.Error("file metadata delete failed", zap.String("file_id", id.Hex()), zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	jsonutil.Write(w, http.StatusOK, map[string]string{"message": "File deleted successfully"})
}

// sanitizeFilename removes path components and replaces characters that
// could be problematic in storage keys.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	if filename == "." || filename == ".." || filename == "/" {
		return "file"
	}

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}
	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '-' || c == '_':
		return true
	}
	return false
}
