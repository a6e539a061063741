package beautify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Instruction is the fixed prompt sent with every request; the drawing is
// the only variable input.
const Instruction = "Redraw this rough sketch as a clean, polished illustration. " +
	"Keep the composition, colors and subject exactly as drawn."

// ErrNoImage means the service answered but sent no image back.
var ErrNoImage = errors.New("beautify: service returned no image")

type request struct {
	Image       string `json:"image"`
	Instruction string `json:"instruction"`
}

type response struct {
	Image string `json:"image"`
	Error string `json:"error,omitempty"`
}

// Client talks to a beautify endpoint: one PNG data URI in, one out.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a client for the given endpoint URL. Image generation is
// slow, so the default timeout is generous.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Beautify sends the drawing and returns the stylized image as a PNG data
// URI. Transport failures, non-200 answers and empty answers are all
// reported as plain errors; the caller turns them into one status message.
func (c *Client) Beautify(imageDataURI string) (string, error) {
	body, err := json.Marshal(request{Image: imageDataURI, Instruction: Instruction})
	if err != nil {
		return "", fmt.Errorf("beautify: encoding request: %w", err)
	}

	resp, err := c.http.Post(c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("beautify: service unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return "", fmt.Errorf("beautify: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("beautify: service returned %s", resp.Status)
	}

	var out response
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("beautify: malformed response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("beautify: %s", out.Error)
	}
	if !strings.HasPrefix(out.Image, "data:image/") {
		return "", ErrNoImage
	}
	return out.Image, nil
}
