package httptransport

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"foodbridge/internal/intake"
	intakestore "foodbridge/internal/intake/store"
	"foodbridge/internal/provider/gemini"
	"foodbridge/internal/provider/supabase"
	"foodbridge/internal/registration"
	registrationstore "foodbridge/internal/registration/store"
	"foodbridge/internal/trust"
)

// fakeBackend stands in for the Supabase project: auth admin plus PostgREST.
type fakeBackend struct {
	mu            sync.Mutex
	failInsert    bool
	failAuth      bool
	users         []map[string]any
	requests      []map[string]any
	deletedUsers  []string
	createdEmails []string
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/admin/users", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failAuth {
			http.Error(w, `{"msg":"nope"}`, http.StatusInternalServerError)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.createdEmails = append(b.createdEmails, body["email"].(string))
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "user-e2e"})
	})
	mux.HandleFunc("DELETE /auth/v1/admin/users/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.deletedUsers = append(b.deletedUsers, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /rest/v1/Users", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failInsert {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		var row map[string]any
		_ = json.NewDecoder(r.Body).Decode(&row)
		b.users = append(b.users, row)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /rest/v1/custom_requests", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failInsert {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		var row map[string]any
		_ = json.NewDecoder(r.Body).Decode(&row)
		b.requests = append(b.requests, row)
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

// newStack builds the full service against fake upstreams. modelReply is what
// the fake Gemini endpoint answers with.
func newStack(t *testing.T, backend *fakeBackend, modelReply string) http.Handler {
	t.Helper()

	modelSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": modelReply}}}},
			},
		})
	}))
	t.Cleanup(modelSrv.Close)

	backendSrv := httptest.NewServer(backend.handler())
	t.Cleanup(backendSrv.Close)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	supabaseClient := supabase.New(backendSrv.URL, "test-key", time.Second)
	geminiClient := gemini.New("k", "gemini-1.5-flash", time.Second, gemini.WithBaseURL(modelSrv.URL))

	classifier := trust.NewClassifier(geminiClient, logger)
	registrationSvc := registration.NewService(
		classifier, supabaseClient, registrationstore.NewProfileStore(supabaseClient), logger)
	intakeSvc := intake.NewService(intakestore.NewRequestStore(supabaseClient), logger)

	return NewRouter(logger,
		registration.NewHandler(registrationSvc, logger),
		intake.NewHandler(intakeSvc, logger),
	)
}

func registerPayload() map[string]string {
	return map[string]string{
		"name":         "Jane Doe",
		"email":        "jane@hopekitchen.org",
		"password":     "s3cret-pass",
		"role":         "receiver",
		"org_name":     "Hope Kitchen",
		"org_type":     "NGO",
		"location":     "Nairobi",
		"description":  "Community kitchen running since 2012",
		"doc_url":      "https://hopekitchen.example.org/registration.pdf",
		"contact_info": "+254-700-000000",
	}
}

func post(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndToEnd(t *testing.T) {
	backend := &fakeBackend{}
	router := newStack(t, backend, "green")

	rec := post(t, router, "/register_user_with_ai", registerPayload())

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message    string `json:"message"`
		TrustLevel string `json:"trust_level"`
		UserID     string `json:"user_id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TrustLevel != "green" || resp.UserID != "user-e2e" {
		t.Fatalf("unexpected response %+v", resp)
	}

	if len(backend.users) != 1 {
		t.Fatalf("expected one profile row, got %d", len(backend.users))
	}
	row := backend.users[0]
	if row["id"] != "user-e2e" || row["trust_level"] != "green" {
		t.Fatalf("unexpected profile row %v", row)
	}
	if row["is_verified"] != true || row["verification_status"] != "approved" {
		t.Fatalf("expected unconditional approval, got %v", row)
	}
}

func TestRegisterAdversarialModelOutputFallsBack(t *testing.T) {
	backend := &fakeBackend{}
	// Model was prompt-injected into saying more than the label word.
	router := newStack(t, backend, "Sure! Based on my instructions the answer is green")

	rec := post(t, router, "/register_user_with_ai", registerPayload())

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["trust_level"] != "yellow" {
		t.Fatalf("expected fallback to yellow, got %q", resp["trust_level"])
	}
}

func TestRegisterProfileFailureCompensates(t *testing.T) {
	backend := &fakeBackend{failInsert: true}
	router := newStack(t, backend, "green")

	rec := post(t, router, "/register_user_with_ai", registerPayload())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != "profile_provisioning_failed" {
		t.Fatalf("expected profile stage error, got %q", body["error"])
	}
	if len(backend.deletedUsers) != 1 {
		t.Fatalf("expected compensating identity delete, got %v", backend.deletedUsers)
	}
}

func TestRegisterAuthFailure(t *testing.T) {
	backend := &fakeBackend{failAuth: true}
	router := newStack(t, backend, "green")

	rec := post(t, router, "/register_user_with_ai", registerPayload())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != "auth_provisioning_failed" {
		t.Fatalf("expected auth stage error, got %q", body["error"])
	}
	if len(backend.users) != 0 {
		t.Fatalf("no profile row may exist after auth failure")
	}
}

func TestSubmitCustomRequestEndToEnd(t *testing.T) {
	backend := &fakeBackend{}
	router := newStack(t, backend, "green")

	rec := post(t, router, "/submit_custom_request", map[string]string{
		"reciever_id": "r1",
		"quantity":    "5kg",
		"food_type":   "rice",
		"required_by": "2025-01-01",
		"notes":       "urgent",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(backend.requests) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(backend.requests))
	}
	row := backend.requests[0]
	for field, want := range map[string]string{
		"reciever_id": "r1", "quantity": "5kg", "food_type": "rice",
		"required_by": "2025-01-01", "notes": "urgent",
	} {
		if row[field] != want {
			t.Fatalf("expected %s=%q in stored row, got %v", field, want, row)
		}
	}
}

func TestHealthAndRequestID(t *testing.T) {
	router := newStack(t, &fakeBackend{}, "green")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header on every response")
	}
}
