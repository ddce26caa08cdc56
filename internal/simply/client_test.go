package simply

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func intPtr(n int) *int { return &n }

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := New(Config{
		Account:    "S000001",
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	return client, srv
}

func TestListRecords(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantLen    int
		wantErr    bool
		wantDecode bool
	}{
		{
			name:    "two records in service order",
			status:  http.StatusOK,
			body:    `{"records":[{"record_id":2,"name":"www","ttl":3600,"data":"1.2.3.4","type":"A"},{"record_id":1,"name":"@","ttl":600,"data":"mail.example.com","type":"MX","priority":10,"comment":"mx"}]}`,
			wantLen: 2,
		},
		{
			name:    "empty records array",
			status:  http.StatusOK,
			body:    `{"records":[]}`,
			wantLen: 0,
		},
		{
			name:    "records field absent",
			status:  http.StatusOK,
			body:    `{}`,
			wantLen: 0,
		},
		{
			name:    "status not consulted on this endpoint",
			status:  http.StatusInternalServerError,
			body:    `{"records":[{"record_id":7,"name":"www","ttl":300,"data":"5.6.7.8","type":"A"}]}`,
			wantLen: 1,
		},
		{
			name:       "undecodable body",
			status:     http.StatusOK,
			body:       `<html>maintenance</html>`,
			wantErr:    true,
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("method = %s, want GET", r.Method)
				}
				if r.URL.Path != "/my/products/example.com/dns/records" {
					t.Errorf("path = %s, want /my/products/example.com/dns/records", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			records, err := client.ListRecords(context.Background(), "example.com")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantDecode {
				var de *DecodeError
				if !errors.As(err, &de) {
					t.Errorf("error = %T, want *DecodeError", err)
				}
				return
			}
			if records == nil {
				t.Fatal("records is nil, want empty or populated slice")
			}
			if len(records) != tt.wantLen {
				t.Errorf("len(records) = %d, want %d", len(records), tt.wantLen)
			}
		})
	}
}

func TestListRecordsFields(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records":[{"record_id":42,"name":"@","ttl":600,"data":"mail.example.com","type":"MX","priority":0,"comment":"primary"}]}`))
	}))

	records, err := client.ListRecords(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	got := records[0]
	if got.ID != 42 {
		t.Errorf("ID = %d, want 42", got.ID)
	}
	if got.Type != "MX" {
		t.Errorf("Type = %q, want MX", got.Type)
	}
	if got.Priority == nil || *got.Priority != 0 {
		t.Errorf("Priority = %v, want pointer to 0", got.Priority)
	}
	if got.Comment != "primary" {
		t.Errorf("Comment = %q, want primary", got.Comment)
	}
}

func TestCreateRecord(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantIDs []RecordID
	}{
		{
			name:    "single id",
			body:    `{"status":200,"message":"","record":[{"id":123}]}`,
			wantIDs: []RecordID{123},
		},
		{
			name:    "multiple ids",
			body:    `{"status":200,"message":"","record":[{"id":1},{"id":2}]}`,
			wantIDs: []RecordID{1, 2},
		},
		{
			name:    "null record list",
			body:    `{"status":200,"message":"ok","record":null}`,
			wantIDs: []RecordID{},
		},
		{
			name:    "record field absent",
			body:    `{"status":200,"message":"ok"}`,
			wantIDs: []RecordID{},
		},
		{
			name: "embedded failure status ignored when body decodes",
			body: `{"status":400,"message":"looks wrong","record":[{"id":9}]}`,
			// HTTP-level outcome is authoritative.
			wantIDs: []RecordID{9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				w.Write([]byte(tt.body))
			}))

			ids, err := client.CreateRecord(context.Background(), "example.com", CreateRequest{
				Type: "A",
				Name: "www",
				Data: "1.2.3.4",
			})
			if err != nil {
				t.Fatalf("CreateRecord: %v", err)
			}
			if ids == nil {
				t.Fatal("ids is nil, want empty or populated slice")
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("len(ids) = %d, want %d", len(ids), len(tt.wantIDs))
			}
			for i, id := range ids {
				if id != tt.wantIDs[i] {
					t.Errorf("ids[%d] = %d, want %d", i, id, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestCreateRecordWirePayload(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateRequest
		wantKeys map[string]bool
	}{
		{
			name: "optionals omitted when unset",
			req:  CreateRequest{Type: "A", Name: "www", Data: "1.2.3.4"},
			wantKeys: map[string]bool{
				"type": true, "name": true, "data": true,
				"ttl": false, "priority": false, "comment": false,
			},
		},
		{
			name: "zero priority still serialized",
			req:  CreateRequest{Type: "MX", Name: "@", Data: "mail.example.com", Priority: intPtr(0), TTL: intPtr(3600), Comment: "mx"},
			wantKeys: map[string]bool{
				"type": true, "name": true, "data": true,
				"ttl": true, "priority": true, "comment": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload map[string]any
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
					t.Errorf("decode request body: %v", err)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %q, want application/json", ct)
				}
				w.Write([]byte(`{"status":200,"message":"","record":[{"id":1}]}`))
			}))

			if _, err := client.CreateRecord(context.Background(), "example.com", tt.req); err != nil {
				t.Fatalf("CreateRecord: %v", err)
			}
			for key, want := range tt.wantKeys {
				if _, ok := payload[key]; ok != want {
					t.Errorf("payload key %q present = %v, want %v", key, ok, want)
				}
			}
		})
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	var (
		mu     sync.Mutex
		stored CreateRequest
	)
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			mu.Lock()
			if err := json.NewDecoder(r.Body).Decode(&stored); err != nil {
				t.Errorf("decode create body: %v", err)
			}
			mu.Unlock()
			w.Write([]byte(`{"status":200,"message":"","record":[{"id":55}]}`))
		case http.MethodGet:
			mu.Lock()
			echo := Record{ID: 55, Name: stored.Name, Data: stored.Data, Type: stored.Type}
			if stored.TTL != nil {
				echo.TTL = *stored.TTL
			}
			mu.Unlock()
			json.NewEncoder(w).Encode(listResponse{Records: []Record{echo}})
		}
	}))

	ctx := context.Background()
	ids, err := client.CreateRecord(ctx, "example.com", CreateRequest{
		Type: "A",
		Name: "www",
		Data: "1.2.3.4",
		TTL:  intPtr(3600),
	})
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if len(ids) != 1 || ids[0] != 55 {
		t.Fatalf("ids = %v, want [55]", ids)
	}

	records, err := client.ListRecords(ctx, "example.com")
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	got := records[0]
	if got.ID != ids[0] || got.Type != "A" || got.Name != "www" || got.Data != "1.2.3.4" || got.TTL != 3600 {
		t.Errorf("round-tripped record = %+v", got)
	}
}

func TestUpdateRecord(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{name: "success with empty body", status: http.StatusOK, body: ""},
		{name: "success body content ignored", status: http.StatusOK, body: `{"status":400,"message":"ignored"}`},
		{name: "success with garbage body", status: http.StatusOK, body: `not json at all`},
		{name: "failure with message envelope", status: http.StatusBadRequest, body: `{"message":"invalid record"}`, wantErr: true, wantCode: 400, wantMessage: "invalid record"},
		{name: "failure with unparseable body", status: http.StatusBadRequest, body: `<html>nope</html>`, wantErr: true, wantCode: 400, wantMessage: ""},
		{name: "failure without message field", status: http.StatusNotFound, body: `{}`, wantErr: true, wantCode: 404, wantMessage: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("method = %s, want PUT", r.Method)
				}
				if r.URL.Path != "/my/products/example.com/dns/records/31337" {
					t.Errorf("path = %s, want /my/products/example.com/dns/records/31337", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			err := client.UpdateRecord(context.Background(), "example.com", 31337, UpdateRequest{
				Type: "A",
				Name: "www",
				Data: "4.3.2.1",
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %T, want *APIError", err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", apiErr.Code, tt.wantCode)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestDeleteRecord(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  bool
		wantCode int
	}{
		{name: "success", status: http.StatusOK, body: `{"status":200,"message":"ok"}`},
		{name: "success with empty body", status: http.StatusNoContent, body: ""},
		{name: "failure", status: http.StatusBadRequest, body: `{"message":"invalid record"}`, wantErr: true, wantCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("method = %s, want DELETE", r.Method)
				}
				if r.URL.Path != "/my/products/example.com/dns/records/99" {
					t.Errorf("path = %s, want /my/products/example.com/dns/records/99", r.URL.Path)
				}
				if r.ContentLength > 0 {
					t.Errorf("delete carried a body of %d bytes", r.ContentLength)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			err := client.DeleteRecord(context.Background(), "example.com", 99)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %T, want *APIError", err)
				}
				if apiErr.Code != tt.wantCode {
					t.Errorf("Code = %d, want %d", apiErr.Code, tt.wantCode)
				}
			}
		})
	}
}

func TestBaseURLNormalization(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"records":[]}`))
	}))
	t.Cleanup(srv.Close)

	for _, tt := range []struct {
		name string
		base string
	}{
		{name: "no trailing slash", base: srv.URL},
		{name: "trailing slash", base: srv.URL + "/"},
		{name: "several trailing slashes", base: srv.URL + "///"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			client := New(Config{Account: "a", APIKey: "k", BaseURL: tt.base, HTTPClient: srv.Client()})
			if _, err := client.ListRecords(context.Background(), "example.com"); err != nil {
				t.Fatalf("ListRecords: %v", err)
			}
			if gotPath != "/my/products/example.com/dns/records" {
				t.Errorf("path = %q, want /my/products/example.com/dns/records", gotPath)
			}
		})
	}
}

func TestRecordIDRendersDecimal(t *testing.T) {
	var gotPath string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))

	if err := client.DeleteRecord(context.Background(), "example.com", 1234567890); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if gotPath != "/my/products/example.com/dns/records/1234567890" {
		t.Errorf("path = %q, want decimal id segment", gotPath)
	}
}

func TestBasicAuthOnEveryRequest(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "S000001" || pass != "test-key" {
			t.Errorf("basic auth = %q/%q (ok=%v), want S000001/test-key", user, pass, ok)
		}
		mu.Lock()
		calls++
		mu.Unlock()
		w.Write([]byte(`{"records":[],"record":[],"status":200,"message":""}`))
	}))

	ctx := context.Background()
	if _, err := client.ListRecords(ctx, "example.com"); err != nil {
		t.Errorf("ListRecords: %v", err)
	}
	if _, err := client.CreateRecord(ctx, "example.com", CreateRequest{Type: "A", Name: "w", Data: "1.1.1.1"}); err != nil {
		t.Errorf("CreateRecord: %v", err)
	}
	if err := client.UpdateRecord(ctx, "example.com", 1, UpdateRequest{Type: "A", Name: "w", Data: "1.1.1.1"}); err != nil {
		t.Errorf("UpdateRecord: %v", err)
	}
	if err := client.DeleteRecord(ctx, "example.com", 1); err != nil {
		t.Errorf("DeleteRecord: %v", err)
	}
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
}

func TestTransportErrorOnConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	client := New(Config{Account: "a", APIKey: "k", BaseURL: deadURL})
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "list", call: func() error {
			_, err := client.ListRecords(ctx, "example.com")
			return err
		}},
		{name: "create", call: func() error {
			_, err := client.CreateRecord(ctx, "example.com", CreateRequest{Type: "A", Name: "w", Data: "1.1.1.1"})
			return err
		}},
		{name: "update", call: func() error {
			return client.UpdateRecord(ctx, "example.com", 1, UpdateRequest{Type: "A", Name: "w", Data: "1.1.1.1"})
		}},
		{name: "delete", call: func() error {
			return client.DeleteRecord(ctx, "example.com", 1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var te *TransportError
			if !errors.As(err, &te) {
				t.Fatalf("error = %T (%v), want *TransportError", err, err)
			}
			if !IsTransport(err) {
				t.Error("IsTransport = false, want true")
			}
			var de *DecodeError
			if errors.As(err, &de) {
				t.Error("transport failure classified as DecodeError")
			}
			var ae *APIError
			if errors.As(err, &ae) {
				t.Error("transport failure classified as APIError")
			}
		})
	}
}

func TestDefaultBaseURL(t *testing.T) {
	client := New(Config{Account: "a", APIKey: "k"})
	if got := client.recordsURL("example.com"); got != "https://api.simply.com/2/my/products/example.com/dns/records" {
		t.Errorf("recordsURL = %q", got)
	}
}
