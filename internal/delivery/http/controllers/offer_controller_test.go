package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"offerboard/internal/delivery/http/helpers"
	"offerboard/internal/domain"

	"github.com/go-chi/chi/v5"
)

type mockOfferService struct {
	page     *domain.Page[*domain.Offer]
	offer    *domain.Offer
	tags     []*domain.Tag
	err      error
	gotPage  int
	gotID    int64
	gotOffer *domain.Offer
	gotTags  []string
}

func (m *mockOfferService) List(ctx context.Context, page int) (*domain.Page[*domain.Offer], error) {
	m.gotPage = page
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockOfferService) Get(ctx context.Context, id int64) (*domain.Offer, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.offer, nil
}

func (m *mockOfferService) Create(ctx context.Context, offer *domain.Offer, tagNames []string) error {
	m.gotOffer, m.gotTags = offer, tagNames
	if m.err != nil {
		return m.err
	}
	offer.ID = 17
	return nil
}

func (m *mockOfferService) Update(ctx context.Context, id int64, offer *domain.Offer, tagNames []string) error {
	m.gotID, m.gotOffer, m.gotTags = id, offer, tagNames
	if m.err != nil {
		return m.err
	}
	offer.ID = id
	return nil
}

func (m *mockOfferService) Delete(ctx context.Context, id int64) error {
	m.gotID = id
	return m.err
}

func (m *mockOfferService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tags, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func offerRouter(svc domain.OfferService) http.Handler {
	ctrl := NewOfferController(testLogger(), svc)
	r := chi.NewRouter()
	r.Get("/offers", ctrl.List)
	r.Get("/offers/page/{page}", ctrl.List)
	r.Post("/offers", ctrl.Create)
	r.Get("/offers/{id}", ctrl.View)
	r.Put("/offers/{id}", ctrl.Update)
	r.Delete("/offers/{id}", ctrl.Delete)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, helpers.APIResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v (%s)", err, w.Body.String())
	}
	return w, resp
}

const validOfferBody = `{
	"author_id": 1,
	"category_id": 2,
	"city_id": 3,
	"region_id": 4,
	"content": "Selling a road bike",
	"event_date": "2026-06-01T10:00:00Z",
	"tags": "bikes, sport"
}`

func TestOfferController_List(t *testing.T) {
	svc := &mockOfferService{page: &domain.Page[*domain.Offer]{
		Items:       []*domain.Offer{{ID: 21}, {ID: 22}},
		CurrentPage: 3,
		PageSize:    10,
		TotalCount:  22,
	}}
	h := offerRouter(svc)

	tests := []struct {
		target   string
		wantPage int
	}{
		{"/offers", 1},
		{"/offers/page/3", 3},
		{"/offers/page/99", 99},
		{"/offers/page/-2", -2},
		{"/offers/page/abc", 1},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w, resp := do(t, h, http.MethodGet, tt.target, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
			}
			if svc.gotPage != tt.wantPage {
				t.Fatalf("expected page %d passed to service, got %d", tt.wantPage, svc.gotPage)
			}
			data := resp.Data.(map[string]any)
			pagination := data["pagination"].(map[string]any)
			if pagination["page"].(float64) != 3 || pagination["total_pages"].(float64) != 3 || pagination["total"].(float64) != 22 {
				t.Fatalf("unexpected pagination %v", pagination)
			}
			if items := data["items"].([]any); len(items) != 2 {
				t.Fatalf("expected 2 items, got %d", len(items))
			}
		})
	}
}

func TestOfferController_List_Error(t *testing.T) {
	h := offerRouter(&mockOfferService{err: errors.New("db down")})
	w, resp := do(t, h, http.MethodGet, "/offers", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeInternalError {
		t.Fatalf("expected internal_error, got %+v", resp.Error)
	}
	if strings.Contains(resp.Error.Message, "db down") {
		t.Fatalf("storage error leaked to client: %q", resp.Error.Message)
	}
}

func TestOfferController_View(t *testing.T) {
	svc := &mockOfferService{offer: &domain.Offer{ID: 5, Content: "Piano"}}
	w, resp := do(t, offerRouter(svc), http.MethodGet, "/offers/5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.gotID != 5 {
		t.Fatalf("expected id 5, got %d", svc.gotID)
	}
	if resp.Data.(map[string]any)["content"] != "Piano" {
		t.Fatalf("unexpected data %v", resp.Data)
	}
}

func TestOfferController_View_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		target string
		svc    *mockOfferService
	}{
		{"missing offer", "/offers/9", &mockOfferService{err: domain.ErrNotFound}},
		{"zero id", "/offers/0", &mockOfferService{}},
		{"non numeric id", "/offers/abc", &mockOfferService{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := do(t, offerRouter(tt.svc), http.MethodGet, tt.target, "")
			if w.Code != http.StatusNotFound {
				t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
			}
			if resp.Error == nil || resp.Error.Code != helpers.ErrCodeNotFound {
				t.Fatalf("expected not_found, got %+v", resp.Error)
			}
		})
	}
}

func TestOfferController_Create(t *testing.T) {
	svc := &mockOfferService{}
	w, resp := do(t, offerRouter(svc), http.MethodPost, "/offers", validOfferBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (%s)", http.StatusCreated, w.Code, w.Body.String())
	}
	if svc.gotOffer.Content != "Selling a road bike" || svc.gotOffer.RegionID != 4 {
		t.Fatalf("unexpected offer passed to service: %+v", svc.gotOffer)
	}
	if !svc.gotOffer.EventDate.Equal(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected event date %v", svc.gotOffer.EventDate)
	}
	if len(svc.gotTags) != 2 || svc.gotTags[0] != "bikes" || svc.gotTags[1] != "sport" {
		t.Fatalf("unexpected tags %v", svc.gotTags)
	}
	if resp.Data.(map[string]any)["id"].(float64) != 17 {
		t.Fatalf("expected id 17 in response, got %v", resp.Data)
	}
}

func TestOfferController_Create_ValidationFailed(t *testing.T) {
	body := `{"author_id": 0, "category_id": -1, "city_id": 3, "region_id": 4, "content": "ab"}`
	svc := &mockOfferService{}
	w, resp := do(t, offerRouter(svc), http.MethodPost, "/offers", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeValidationFailed {
		t.Fatalf("expected validation_failed, got %+v", resp.Error)
	}
	want := map[string]string{
		"author_id":   "is required",
		"category_id": "must be greater than 0",
		"content":     "must be at least 3 characters long",
		"event_date":  "is required",
	}
	for field, msg := range want {
		if resp.Error.Fields[field] != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, resp.Error.Fields[field])
		}
	}
	if len(resp.Error.Fields) != len(want) {
		t.Fatalf("unexpected fields %v", resp.Error.Fields)
	}
	if svc.gotOffer != nil {
		t.Fatal("service must not be called on invalid input")
	}
}

func TestOfferController_Create_BadJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"author_id":`},
		{"unknown field", `{"title": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := do(t, offerRouter(&mockOfferService{}), http.MethodPost, "/offers", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
			if resp.Error == nil || resp.Error.Code != helpers.ErrCodeBadRequest {
				t.Fatalf("expected bad_request, got %+v", resp.Error)
			}
		})
	}
}

func TestOfferController_Create_ServiceError(t *testing.T) {
	w, _ := do(t, offerRouter(&mockOfferService{err: errors.New("tx aborted")}), http.MethodPost, "/offers", validOfferBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestOfferController_Update(t *testing.T) {
	svc := &mockOfferService{}
	w, resp := do(t, offerRouter(svc), http.MethodPut, "/offers/4", validOfferBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d (%s)", http.StatusOK, w.Code, w.Body.String())
	}
	if svc.gotID != 4 {
		t.Fatalf("expected id 4, got %d", svc.gotID)
	}
	if resp.Data.(map[string]any)["id"].(float64) != 4 {
		t.Fatalf("expected id 4 in response, got %v", resp.Data)
	}
}

func TestOfferController_Update_NotFound(t *testing.T) {
	w, _ := do(t, offerRouter(&mockOfferService{err: domain.ErrNotFound}), http.MethodPut, "/offers/4", validOfferBody)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestOfferController_Delete(t *testing.T) {
	svc := &mockOfferService{}
	w, resp := do(t, offerRouter(svc), http.MethodDelete, "/offers/12", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.gotID != 12 || resp.Data.(map[string]any)["id"].(float64) != 12 {
		t.Fatalf("unexpected delete result: id=%d data=%v", svc.gotID, resp.Data)
	}
}

func TestOfferController_Delete_Errors(t *testing.T) {
	w, _ := do(t, offerRouter(&mockOfferService{err: domain.ErrNotFound}), http.MethodDelete, "/offers/12", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	w, _ = do(t, offerRouter(&mockOfferService{err: errors.New("boom")}), http.MethodDelete, "/offers/12", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
