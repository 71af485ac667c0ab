// internal/app/system/upstream/files.go
package upstream

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dalemusser/pitwall/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// UploadResult is the file handler's response to a successful upload.
type UploadResult struct {
	FileID string `json:"fileId"`
	URL    string `json:"url"`
}

// FileClient calls the file-handler upstream. Upload and delete failures
// always propagate; losing track of file state is unacceptable, so there is
// no degraded mode.
type FileClient struct {
	url          string
	apiKey       string
	uploadClient *http.Client
	deleteClient *http.Client
	log          *zap.Logger
}

// NewFileClient creates a file-handler client from the upstream config.
// Uploads carry the payload in the request body and get a longer budget
// than deletes.
func NewFileClient(cfg Config, logger *zap.Logger) *FileClient {
	return &FileClient{
		url:          cfg.FileHandlerURL,
		apiKey:       cfg.FileHandlerAPIKey,
		uploadClient: &http.Client{Timeout: timeouts.Upload},
		deleteClient: &http.Client{Timeout: timeouts.Read},
		log:          logger,
	}
}

// Upload sends the file bytes (base64-encoded JSON body) to the upstream
// and returns its file ID and serving URL.
func (c *FileClient) Upload(ctx context.Context, data []byte, filename, userID string) (*UploadResult, error) {
	if c.url == "" || c.apiKey == "" {
		return nil, fmt.Errorf("file handler: %w", ErrNotConfigured)
	}

	body := map[string]string{
		"action":   "upload",
		"file":     base64.StdEncoding.EncodeToString(data),
		"filename": filename,
		"userId":   userID,
	}

	var result UploadResult
	if err := c.post(ctx, c.uploadClient, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete asks the upstream to remove the stored object named by fileKey.
func (c *FileClient) Delete(ctx context.Context, fileKey, userID string) error {
	if c.url == "" || c.apiKey == "" {
		return fmt.Errorf("file handler: %w", ErrNotConfigured)
	}

	body := map[string]string{
		"action":  "delete",
		"fileKey": fileKey,
		"userId":  userID,
	}
	return c.post(ctx, c.deleteClient, body, nil)
}

func (c *FileClient) post(ctx context.Context, client *http.Client, body map[string]string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("file handler: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(detach(ctx), http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("file handler: build request: %w", err)
	}
	setAPIKey(req, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		c.log.Warn("file handler call failed",
			zap.String("action", body["action"]), zap.Error(err))
		return fmt.Errorf("file handler: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("file handler returned non-OK status",
			zap.String("action", body["action"]), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("file handler: status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Warn("file handler returned malformed body", zap.Error(err))
			return fmt.Errorf("file handler: decode: %w", ErrUnavailable)
		}
	}
	return nil
}
