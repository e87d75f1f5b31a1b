package documentai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"firmas/internal/config"
)

// Client implements port.OCREngine against the Document AI REST API.
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Document AI-backed OCR engine.
func NewClient(cfg *config.OCRConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.OCRConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OCRConfig, endpoint string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf(
			"https://%s-documentai.googleapis.com/v1/projects/%s/locations/%s/processors/%s:process",
			cfg.Location, cfg.Project, cfg.Location, cfg.ProcessorID)
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetAccessToken replaces the bearer token, used after secrets resolution.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// processRequest is the REST body for a synchronous process call.
type processRequest struct {
	RawDocument rawDocument `json:"rawDocument"`
}

type rawDocument struct {
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
}

type processResponse struct {
	Document struct {
		Text string `json:"text"`
	} `json:"document"`
}

func (c *Client) RecognizeText(ctx context.Context, pdfBytes []byte) (string, error) {
	reqBody := processRequest{
		RawDocument: rawDocument{
			Content:  base64.StdEncoding.EncodeToString(pdfBytes),
			MimeType: "application/pdf",
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling document AI API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("document AI error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed processResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	return parsed.Document.Text, nil
}
