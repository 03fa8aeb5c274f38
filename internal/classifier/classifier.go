// Package classifier is the HTTP client for the external AI waste
// classification service. The service is an opaque collaborator: the app
// ships it image bytes and relays whatever it answers; its unavailability
// surfaces directly as an upstream failure.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// Result is the classification answer passed through to the caller
type Result struct {
	Class         string             `json:"class"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	Insights      string             `json:"waste_management_insights"`
}

// Client calls the classification service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *log.Logger
}

// New creates a classifier client for the given base URL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger.Classifier(),
	}
}

// Classify uploads an image and returns the classification result
func (c *Client) Classify(ctx context.Context, filename string, image io.Reader) (*Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	url := c.baseURL + "/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.Debug("Classifying image", "url", url, "filename", filename)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Classification request failed", "error", err)
		return nil, fmt.Errorf("%w: %s", apperror.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("Classification service returned error", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: classifier returned status %d", apperror.ErrUpstream, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Error("Failed to decode classification response", "error", err)
		return nil, fmt.Errorf("%w: invalid classifier response", apperror.ErrUpstream)
	}

	c.log.Info("Image classified", "class", result.Class, "confidence", result.Confidence)
	return &result, nil
}
