package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/zonebook/zonebook/internal/models"
	"github.com/zonebook/zonebook/internal/store"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.Reservation{})

	r := chi.NewRouter()
	RegisterRoutes(r, zap.NewNop(), NewReservationHandler(store.NewReservationStore(db), zap.NewNop()))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateWithAbsentKeyReturns400NamingField(t *testing.T) {
	srv := setupServer(t)

	// The phone key is absent entirely, not just empty.
	resp := postJSON(t, srv.URL+"/reservations",
		`{"name":"Alice","zone":3,"date":"2025-06-01","start_time":"10:00","end_time":"10:30"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing field, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if !strings.Contains(body.Error, "phone") {
		t.Errorf("expected the error to mention phone, got %q", body.Error)
	}
}

func TestCreateWithEmptyBodyListsAllRequiredFields(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/reservations", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty body, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	for _, field := range []string{"name", "phone", "zone", "date", "start_time", "end_time"} {
		if !strings.Contains(body.Error, field) {
			t.Errorf("expected the error to mention %s, got %q", field, body.Error)
		}
	}
}

func TestCreateOnWireReturns201WithID(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/reservations",
		`{"name":"Alice","phone":"123456789","zone":3,"date":"2025-06-01","start_time":"10:00","end_time":"10:30","status":"ArrivedAtVenue"}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created models.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created reservation: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
}

func TestDeleteOnWireLifecycle(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/reservations",
		`{"name":"Alice","phone":"123456789","zone":3,"date":"2025-06-01","start_time":"10:00","end_time":"10:30"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created models.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created reservation: %v", err)
	}

	del := func() *http.Response {
		req, err := http.NewRequest(http.MethodDelete,
			fmt.Sprintf("%s/reservations/%d", srv.URL, created.ID), nil)
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("DELETE failed: %v", err)
		}
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	if resp := del(); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if resp := del(); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}
