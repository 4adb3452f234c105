package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/openlend/loanledger/internal/model"
)

// HTTPClient implements LedgerClient using the ledger HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Registry ---

func (c *HTTPClient) RegisterAsset(ctx context.Context, req *RegisterAssetRequest) (*model.AssetRecord, error) {
	var asset model.AssetRecord
	if err := c.doJSON(ctx, http.MethodPost, "/v1/assets", req, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *HTTPClient) GetAsset(ctx context.Context, id string) (*model.AssetRecord, error) {
	var asset model.AssetRecord
	if err := c.doJSON(ctx, http.MethodGet, "/v1/assets/"+url.PathEscape(id), nil, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *HTTPClient) ListAssets(ctx context.Context, req *ListAssetsRequest) (*ListAssetsResponse, error) {
	q := url.Values{}
	if req.Holder != "" {
		q.Set("holder", req.Holder)
	}
	if req.Originator != "" {
		q.Set("originator", req.Originator)
	}
	if len(req.Status) > 0 {
		q.Set("status", strings.Join(req.Status, ","))
	}
	if req.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", req.Limit))
	}
	if req.Offset > 0 {
		q.Set("offset", fmt.Sprintf("%d", req.Offset))
	}

	path := "/v1/assets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListAssetsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- Transfers ---

func (c *HTTPClient) Transfer(ctx context.Context, req *TransferRequest) (*model.TransferEvent, error) {
	var transfer model.TransferEvent
	path := "/v1/assets/" + url.PathEscape(req.AssetID) + "/transfer"
	if err := c.doJSON(ctx, http.MethodPost, path, req, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (c *HTTPClient) GetOwnership(ctx context.Context, id string) (map[string]int64, error) {
	var resp struct {
		Ownership map[string]int64 `json:"ownership"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/assets/"+url.PathEscape(id)+"/ownership", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ownership, nil
}

func (c *HTTPClient) GetHistory(ctx context.Context, id string) ([]*model.TransferEvent, error) {
	var resp struct {
		Transfers []*model.TransferEvent `json:"transfers"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/assets/"+url.PathEscape(id)+"/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transfers, nil
}

// --- Lifecycle ---

func (c *HTTPClient) UpdateStatus(ctx context.Context, id, caller, status string) (*model.AssetRecord, error) {
	body := map[string]string{"caller": caller, "status": status}
	var asset model.AssetRecord
	if err := c.doJSON(ctx, http.MethodPost, "/v1/assets/"+url.PathEscape(id)+"/status", body, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// --- Originators ---

func (c *HTTPClient) AuthorizeOriginator(ctx context.Context, caller, identity string) error {
	body := map[string]string{"caller": caller, "identity": identity}
	return c.doJSON(ctx, http.MethodPost, "/v1/originators", body, nil)
}

func (c *HTTPClient) RevokeOriginator(ctx context.Context, caller, identity string) error {
	q := url.Values{}
	q.Set("caller", caller)
	path := "/v1/originators/" + url.PathEscape(identity) + "?" + q.Encode()
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) ListOriginators(ctx context.Context) ([]*model.Originator, error) {
	var resp struct {
		Originators []*model.Originator `json:"originators"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/originators", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Originators, nil
}

func (c *HTTPClient) IsOriginator(ctx context.Context, identity string) (bool, error) {
	var resp struct {
		Authorized bool `json:"authorized"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/originators/"+url.PathEscape(identity), nil, &resp); err != nil {
		return false, err
	}
	return resp.Authorized, nil
}

// --- Events ---

func (c *HTTPClient) GetEvents(ctx context.Context, assetID string) ([]*model.Event, error) {
	var resp struct {
		Events []*model.Event `json:"events"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/assets/"+url.PathEscape(assetID)+"/events", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

// --- Health ---

func (c *HTTPClient) Health(ctx context.Context) (string, string, error) {
	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &resp); err != nil {
		return "", "", err
	}
	return resp.Status, resp.Version, nil
}

// --- internal helpers ---

// APIError is returned for non-2xx responses from the ledger server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON response.
// If result is nil, the response body is discarded (for DELETE responses).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
