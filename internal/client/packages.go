// Package client implements the HTTP client for the upstream packages API.
// It is one of the two raw package sources the service layer can run on
// (the other being the Postgres repo); the engine itself never fetches.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tripdeck/backend/internal/domain"
)

// defaultPageSize is the page size requested from the upstream API when the
// caller does not cap the result.
const defaultPageSize = 50

// Upstream fetches raw package records from the upstream packages API.
type Upstream struct {
	baseURL string
	http    *http.Client
}

// NewUpstream constructs a client for the API rooted at baseURL
// (e.g. "https://api.example.com"). A nil httpClient gets a 10s-timeout
// default; the zero http.Client would hang forever on a stuck upstream.
func NewUpstream(baseURL string, httpClient *http.Client) *Upstream {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Upstream{baseURL: baseURL, http: httpClient}
}

// listResponse is the upstream "list packages" envelope.
type listResponse struct {
	Data       []domain.RawPackage `json:"data"`
	Pagination struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
	} `json:"pagination"`
}

// List fetches raw packages page by page until the upstream runs out or the
// params limit is reached. Pages are requested sequentially: the engine's
// aggregation is order-sensitive, so records must arrive in upstream order.
func (u *Upstream) List(ctx context.Context, params domain.ListParams) ([]domain.RawPackage, error) {
	pageSize := defaultPageSize
	if params.Limit > 0 && params.Limit < pageSize {
		pageSize = params.Limit
	}

	var out []domain.RawPackage
	for page := 1; ; page++ {
		batch, err := u.listPage(ctx, page, pageSize, params.Status)
		if err != nil {
			return nil, fmt.Errorf("client.Upstream.List: %w", err)
		}
		out = append(out, batch...)

		if params.Limit > 0 && len(out) >= params.Limit {
			return out[:params.Limit], nil
		}
		if len(batch) < pageSize {
			return out, nil
		}
	}
}

// listPage performs one GET /packages request.
func (u *Upstream) listPage(ctx context.Context, page, limit int, status string) ([]domain.RawPackage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if status != "" {
		q.Set("status", status)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		u.baseURL+"/packages?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := u.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for the error message; upstream errors
		// are short JSON blobs.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, body)
	}

	var envelope listResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode page %d: %w", page, err)
	}
	return envelope.Data, nil
}
