package upstream

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestFileUpload(t *testing.T) {
	var gotBody map[string]string
	var gotAPIKey, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode upload body: %v", err)
		}
		w.Write([]byte(`{"fileId":"ab12cd34-notes.txt","url":"https://files.example.com/ab12cd34-notes.txt"}`))
	}))
	defer srv.Close()

	client := NewFileClient(Config{FileHandlerURL: srv.URL, FileHandlerAPIKey: "fh-key"}, zap.NewNop())

	data := []byte("tyre pressures: 1.9 front, 1.7 rear")
	result, err := client.Upload(context.Background(), data, "notes.txt", "user-1")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if gotAPIKey != "fh-key" {
		t.Errorf("x-api-key = %q, want fh-key", gotAPIKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["action"] != "upload" {
		t.Errorf("action = %q, want upload", gotBody["action"])
	}
	if gotBody["filename"] != "notes.txt" || gotBody["userId"] != "user-1" {
		t.Errorf("body = %v", gotBody)
	}
	decoded, err := base64.StdEncoding.DecodeString(gotBody["file"])
	if err != nil {
		t.Fatalf("file field is not base64: %v", err)
	}
	if string(decoded) != string(data) {
		t.Errorf("decoded payload = %q, want original bytes", decoded)
	}

	if result.FileID != "ab12cd34-notes.txt" {
		t.Errorf("FileID = %q", result.FileID)
	}
	if result.URL != "https://files.example.com/ab12cd34-notes.txt" {
		t.Errorf("URL = %q", result.URL)
	}
}

func TestFileUpload_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage full", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewFileClient(Config{FileHandlerURL: srv.URL, FileHandlerAPIKey: "fh-key"}, zap.NewNop())

	_, err := client.Upload(context.Background(), []byte("x"), "x.txt", "user-1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}

func TestFileUpload_NotConfigured(t *testing.T) {
	client := NewFileClient(Config{}, zap.NewNop())

	_, err := client.Upload(context.Background(), []byte("x"), "x.txt", "user-1")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v, want ErrNotConfigured", err)
	}
}

func TestFileDelete(t *testing.T) {
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode delete body: %v", err)
		}
		w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	client := NewFileClient(Config{FileHandlerURL: srv.URL, FileHandlerAPIKey: "fh-key"}, zap.NewNop())

	if err := client.Delete(context.Background(), "ab12cd34-notes.txt", "user-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotBody["action"] != "delete" {
		t.Errorf("action = %q, want delete", gotBody["action"])
	}
	if gotBody["fileKey"] != "ab12cd34-notes.txt" || gotBody["userId"] != "user-1" {
		t.Errorf("body = %v", gotBody)
	}
}

func TestFileDelete_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such key", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewFileClient(Config{FileHandlerURL: srv.URL, FileHandlerAPIKey: "fh-key"}, zap.NewNop())

	err := client.Delete(context.Background(), "missing", "user-1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}
