package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mecanica_projects/internal/usecase/interfaces"
)

const (
	HeaderUserSubject = "X-User-Subject"
	HeaderUserRoles   = "X-User-Roles"

	maxErrorBody = 4 << 10
)

// serviceClient is a JSON client for the sibling workshop services.
type serviceClient struct {
	httpClient *http.Client
	baseURL    string
}

func newServiceClient(baseURL string, timeout time.Duration) serviceClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return serviceClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// do sends the request and drains the response. 4xx answers are wrapped with
// interfaces.ErrCollaboratorRejected; 5xx answers and transport errors are plain errors.
func (c serviceClient) do(ctx context.Context, method, path string, headers map[string]string, body any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 400 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	statusErr := fmt.Errorf("%s %s failed with status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	if resp.StatusCode < 500 {
		return fmt.Errorf("%w: %v", interfaces.ErrCollaboratorRejected, statusErr)
	}
	return statusErr
}
