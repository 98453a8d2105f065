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

func testToken() domain.Token {
	return domain.Token{
		Prefix:         "sk_",
		Fingerprint:    "ZXhhbXBs",
		RandomSuffix:   "abcdefghijklmnopqrst",
		Value:          "sk_ZXhhbXBs_abcdefghijklmnopqrst",
		IssuedAtMillis: 1700000000000,
	}
}

func TestGenerateKey(t *testing.T) {
	m := &mockService{generateable: true, hostname: "example.com", genToken: testToken()}
	h := New(m, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/key", strings.NewReader(`{"tier":"standard"}`))
	rr := do(t, h, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201", rr.Code)
	}
	var resp struct {
		Token       string `json:"token"`
		Prefix      string `json:"prefix"`
		Fingerprint string `json:"fingerprint"`
		Domain      string `json:"domain"`
		Tier        string `json:"tier"`
		IssuedAt    int64  `json:"issued_at"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != testToken().Value || resp.Tier != "standard" || resp.Domain != "example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.IssuedAt != 1700000000000 {
		t.Fatalf("issued_at %d", resp.IssuedAt)
	}
	if m.gotTier != domain.TierStandard {
		t.Fatalf("service received tier %q", m.gotTier)
	}
}

func TestGenerateKeyDefaultTier(t *testing.T) {
	m := &mockService{generateable: true, tier: domain.TierHigh, genToken: testToken()}
	h := New(m, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/key", nil)
	rr := do(t, h, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201", rr.Code)
	}
	if m.gotTier != domain.TierHigh {
		t.Fatalf("expected session tier, service received %q", m.gotTier)
	}
}

func TestGenerateKeyUnknownTier(t *testing.T) {
	h := New(&mockService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/key", strings.NewReader(`{"tier":"premium"}`))
	if rr := do(t, h, req); rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
}

func TestGenerateKeyNotGenerateable(t *testing.T) {
	m := &mockService{genErr: app.ErrNotGenerateable}
	h := New(m, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/key", strings.NewReader(`{"tier":"standard"}`))
	if rr := do(t, h, req); rr.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409", rr.Code)
	}
}

func TestGenerateKeyMethodNotAllowed(t *testing.T) {
	h := New(&mockService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/key", nil)
	if rr := do(t, h, req); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rr.Code)
	}
}
