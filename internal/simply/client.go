package simply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lite-lake/simply-dns/internal/infrastructure/logger"
)

const DefaultBaseURL = "https://api.simply.com/2/"

const defaultTimeout = 30 * time.Second

type Config struct {
	Account    string
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client talks to the Simply.com DNS record API. It holds only immutable
// configuration, so one instance is safe for concurrent use across all four
// operations. Cancellation and timeouts belong to the caller's context and
// the injected http.Client.
type Client struct {
	account string
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		account: cfg.Account,
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// ListRecords returns the domain's records in the order the service sent
// them. Success is signaled by a decodable body, not by HTTP status; the
// service does not use status codes on this endpoint.
func (c *Client) ListRecords(ctx context.Context, domain string) ([]Record, error) {
	const op = "list records"
	logger.Debug("listing dns records", "domain", domain)

	req, err := c.newRequest(ctx, http.MethodGet, c.recordsURL(domain), nil)
	if err != nil {
		return nil, err
	}
	body, _, err := c.exchange(req, op)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	if resp.Records == nil {
		return []Record{}, nil
	}
	return resp.Records, nil
}

// CreateRecord creates a record and returns the identifiers the service
// assigned. A creation can yield more than one identifier; an absent list in
// the response means none and comes back as an empty slice. Like ListRecords
// this endpoint signals success by decodability alone.
func (c *Client) CreateRecord(ctx context.Context, domain string, record CreateRequest) ([]RecordID, error) {
	const op = "create record"
	logger.Debug("creating dns record", "domain", domain, "type", record.Type, "name", record.Name)

	req, err := c.newRequest(ctx, http.MethodPost, c.recordsURL(domain), record)
	if err != nil {
		return nil, err
	}
	body, _, err := c.exchange(req, op)
	if err != nil {
		return nil, err
	}

	var resp createResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	ids := make([]RecordID, 0, len(resp.Record))
	for _, created := range resp.Record {
		ids = append(ids, created.ID)
	}
	return ids, nil
}

// UpdateRecord replaces the record's mutable attributes. Unlike list/create,
// this endpoint signals failure through HTTP status: any non-2xx becomes an
// APIError carrying the service's message envelope when one decodes. A 2xx
// body is ignored entirely.
func (c *Client) UpdateRecord(ctx context.Context, domain string, id RecordID, record UpdateRequest) error {
	const op = "update record"
	logger.Debug("updating dns record", "domain", domain, "record_id", id, "type", record.Type, "name", record.Name)

	req, err := c.newRequest(ctx, http.MethodPut, c.recordURL(domain, id), record)
	if err != nil {
		return err
	}
	body, status, err := c.exchange(req, op)
	if err != nil {
		return err
	}
	return statusError(status, body)
}

// DeleteRecord removes the record. Same status-driven outcome policy as
// UpdateRecord.
func (c *Client) DeleteRecord(ctx context.Context, domain string, id RecordID) error {
	const op = "delete record"
	logger.Debug("deleting dns record", "domain", domain, "record_id", id)

	req, err := c.newRequest(ctx, http.MethodDelete, c.recordURL(domain, id), nil)
	if err != nil {
		return err
	}
	body, status, err := c.exchange(req, op)
	if err != nil {
		return err
	}
	return statusError(status, body)
}

func (c *Client) recordsURL(domain string) string {
	return fmt.Sprintf("%s/my/products/%s/dns/records", c.baseURL, domain)
}

func (c *Client) recordURL(domain string, id RecordID) string {
	return fmt.Sprintf("%s/my/products/%s/dns/records/%d", c.baseURL, domain, id)
}

func (c *Client) newRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: "encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	req.SetBasicAuth(c.account, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// exchange performs the request and reads the full body. Any failure up to
// and including the body read is a TransportError; interpreting status and
// body is left to the operation.
func (c *Client) exchange(req *http.Request, op string) ([]byte, int, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: err}
	}
	return body, resp.StatusCode, nil
}

// statusError maps a non-2xx status to an APIError, decoding the {message}
// envelope on a best-effort basis.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &APIError{Code: status}
	}
	return &APIError{Code: status, Message: envelope.Message}
}
