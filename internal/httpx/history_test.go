package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/124-hue/APIkeygenerator/internal/app"
	"github.com/124-hue/APIkeygenerator/internal/domain"
)

func TestHistoryList(t *testing.T) {
	m := &mockService{entries: []domain.HistoryEntry{
		{Domain: "b.example.com", Token: "sk_b"},
		{Domain: "a.example.com", Token: "sk_a"},
	}}
	h := New(m, nil)
	rr := do(t, h, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var resp struct {
		Entries []historyEntry `json:"entries"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Entries) != 2 || resp.Entries[0].Domain != "b.example.com" {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := New(&mockService{}, nil)
	rr := do(t, h, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var resp struct {
		Entries []historyEntry `json:"entries"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Entries == nil || len(resp.Entries) != 0 {
		t.Fatalf("expected empty (not null) entries, got %+v", resp.Entries)
	}
}

func TestReuseEntry(t *testing.T) {
	m := &mockService{reuseEntry: domain.HistoryEntry{Domain: "example.com", Token: "sk_tok"}}
	h := New(m, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/history/reuse", strings.NewReader(`{"index":1}`))
	rr := do(t, h, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if m.gotIdx != 1 {
		t.Fatalf("service received index %d", m.gotIdx)
	}
	var resp historyEntry
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Domain != "example.com" || resp.Token != "sk_tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestReuseOutOfRange(t *testing.T) {
	m := &mockService{reuseErr: app.ErrNoSuchEntry}
	h := New(m, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/history/reuse", strings.NewReader(`{"index":9}`))
	if rr := do(t, h, req); rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rr.Code)
	}
}
