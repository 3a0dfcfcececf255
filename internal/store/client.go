package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a thin HTTP accessor for the record store. It carries no
// business logic: request/response mapping and error normalization only.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the store at baseURL (e.g. http://127.0.0.1:8080).
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 10 * time.Second})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// --- Clients collection ---

func (c *Client) ListClients(ctx context.Context) ([]ClientRecord, error) {
	var out []ClientRecord
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateClient(ctx context.Context, in ClientRecord) (*ClientRecord, error) {
	var out ClientRecord
	if err := c.do(ctx, http.MethodPost, "/clients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClient(ctx context.Context, id uint, in ClientRecord) (*ClientRecord, error) {
	var out ClientRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/clients/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil)
}

// --- Products collection ---

func (c *Client) ListProducts(ctx context.Context) ([]ProductRecord, error) {
	var out []ProductRecord
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches a single product, used for live stock lookups.
func (c *Client) GetProduct(ctx context.Context, id uint) (*ProductRecord, error) {
	var out ProductRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductRecord) (*ProductRecord, error) {
	var out ProductRecord
	if err := c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, in ProductRecord) (*ProductRecord, error) {
	var out ProductRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// AdjustStock decrements a product's stock by quantity (negative values
// restock). The purchase submission path never calls this; the store
// decrements stock itself when registering a purchase.
func (c *Client) AdjustStock(ctx context.Context, id uint, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d/stock", id), body, nil)
}

// --- Purchases collection ---

func (c *Client) ListPurchases(ctx context.Context) ([]PurchaseRecord, error) {
	var out []PurchaseRecord
	if err := c.do(ctx, http.MethodGet, "/purchases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePurchase submits an assembled order. The store validates stock and
// decrements it transactionally; a *RequestError with a 4xx status means
// the order was rejected and nothing was written.
func (c *Client) CreatePurchase(ctx context.Context, req PurchaseRequest) (*PurchaseRecord, error) {
	var out PurchaseRecord
	if err := c.do(ctx, http.MethodPost, "/purchases", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one round trip and normalizes the outcome: transport problems
// become *NetworkError, 404 becomes ErrNotFound, other non-2xx statuses
// become *RequestError carrying the body's error code.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request for %s: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &RequestError{Status: resp.StatusCode, Code: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
