package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// Mock services for testing

type mockSearchService struct {
	searchFn  func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
	suggestFn func(ctx context.Context, partial string) (*domain.SuggestResponse, error)
}

func (m *mockSearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, opts)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSearchService) Suggest(ctx context.Context, partial string) (*domain.SuggestResponse, error) {
	if m.suggestFn != nil {
		return m.suggestFn(ctx, partial)
	}
	return nil, errors.New("not implemented")
}

type mockFAQService struct {
	createFn func(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error)
	getFn    func(ctx context.Context, id string) (*domain.FAQ, error)
	listFn   func(ctx context.Context, page, limit int) (*domain.Page[*domain.FAQ], error)
	updateFn func(ctx context.Context, id string, update *domain.FAQ) (*domain.FAQ, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockFAQService) Create(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	if m.createFn != nil {
		return m.createFn(ctx, faq)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFAQService) Get(ctx context.Context, id string) (*domain.FAQ, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFAQService) List(ctx context.Context, page, limit int) (*domain.Page[*domain.FAQ], error) {
	if m.listFn != nil {
		return m.listFn(ctx, page, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFAQService) Update(ctx context.Context, id string, update *domain.FAQ) (*domain.FAQ, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFAQService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockLinkService struct {
	createFn func(ctx context.Context, link *domain.WebLink) (*domain.WebLink, error)
	getFn    func(ctx context.Context, id string) (*domain.WebLink, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockLinkService) Create(ctx context.Context, link *domain.WebLink) (*domain.WebLink, error) {
	if m.createFn != nil {
		return m.createFn(ctx, link)
	}
	return nil, errors.New("not implemented")
}

func (m *mockLinkService) Get(ctx context.Context, id string) (*domain.WebLink, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockLinkService) List(ctx context.Context, page, limit int) (*domain.Page[*domain.WebLink], error) {
	return nil, errors.New("not implemented")
}

func (m *mockLinkService) Update(ctx context.Context, id string, update *domain.WebLink) (*domain.WebLink, error) {
	return nil, errors.New("not implemented")
}

func (m *mockLinkService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockPDFService struct {
	uploadFn   func(ctx context.Context, fileName string, contents io.Reader) (*domain.PDF, error)
	getFn      func(ctx context.Context, id string) (*domain.PDF, error)
	openFileFn func(ctx context.Context, id string) (io.ReadCloser, *domain.PDF, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockPDFService) Upload(ctx context.Context, fileName string, contents io.Reader) (*domain.PDF, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, fileName, contents)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPDFService) Get(ctx context.Context, id string) (*domain.PDF, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPDFService) OpenFile(ctx context.Context, id string) (io.ReadCloser, *domain.PDF, error) {
	if m.openFileFn != nil {
		return m.openFileFn(ctx, id)
	}
	return nil, nil, errors.New("not implemented")
}

func (m *mockPDFService) List(ctx context.Context, page, limit int) (*domain.Page[*domain.PDF], error) {
	return nil, errors.New("not implemented")
}

func (m *mockPDFService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

// newTestServer wires a Server with mocks; nil mocks are allowed for
// routes a test never touches
func newTestServer(search *mockSearchService, faqs *mockFAQService, links *mockLinkService, pdfs *mockPDFService) *Server {
	if search == nil {
		search = &mockSearchService{}
	}
	if faqs == nil {
		faqs = &mockFAQService{}
	}
	if links == nil {
		links = &mockLinkService{}
	}
	if pdfs == nil {
		pdfs = &mockPDFService{}
	}
	return NewServer(DefaultConfig(), search, faqs, links, pdfs, &mockPinger{}, nil)
}

func TestHealthHandler(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %s", response["status"])
	}
}

func TestReadyHandler_DatabaseDown(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)
	server.db = &mockPinger{err: errors.New("connection refused")}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestReadyHandler_CacheDownIsStillReady(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)
	server.redisClient = &mockPinger{err: errors.New("connection refused")}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200 with degraded cache, got %d", rr.Code)
	}

	var response map[string]string
	json.NewDecoder(rr.Body).Decode(&response)
	if response["cache"] != "unavailable" {
		t.Errorf("expected cache 'unavailable', got %q", response["cache"])
	}
}

func TestHandleSearch(t *testing.T) {
	var gotQuery string
	var gotOpts domain.SearchOptions
	search := &mockSearchService{
		searchFn: func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
			gotQuery = query
			gotOpts = opts
			return &domain.SearchResponse{
				Query: query,
				Count: 1,
				Results: []*domain.SearchHit{
					{Type: domain.ContentTypeFAQ, ID: "faq-1", Title: "Refund Policy", Rank: 0.61, CreatedAt: time.Now()},
				},
			}, nil
		},
	}
	server := newTestServer(search, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/search?q=refund+policy&type=faq&limit=5", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if gotQuery != "refund policy" {
		t.Errorf("expected query 'refund policy', got %q", gotQuery)
	}
	if gotOpts.Type != domain.ContentTypeFAQ || gotOpts.Limit != 5 {
		t.Errorf("unexpected options: %+v", gotOpts)
	}

	var response domain.SearchResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 1 || response.Results[0].ID != "faq-1" {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestHandleSearch_BlankQuery(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
			return nil, domain.ErrInvalidQuery
		},
	}
	server := newTestServer(search, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/search?q=", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSearch_UnknownType(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/search?q=refund&type=video", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown type, got %d", rr.Code)
	}
}

func TestHandleSearch_StoreUnavailable(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
			return nil, domain.ErrStoreUnavailable
		},
	}
	server := newTestServer(search, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/search?q=refund", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestHandleSuggestions(t *testing.T) {
	search := &mockSearchService{
		suggestFn: func(ctx context.Context, partial string) (*domain.SuggestResponse, error) {
			return &domain.SuggestResponse{
				Suggestions: []domain.Suggestion{
					{Title: "Refund Policy", Type: domain.ContentTypeFAQ},
				},
			}, nil
		},
	}
	server := newTestServer(search, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/search/suggestions?q=ref", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var response domain.SuggestResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Suggestions) != 1 || response.Suggestions[0].Title != "Refund Policy" {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestHandleCreateFAQ(t *testing.T) {
	faqs := &mockFAQService{
		createFn: func(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
			faq.ID = "faq-1"
			return faq, nil
		},
	}
	server := newTestServer(nil, faqs, nil, nil)

	body, _ := json.Marshal(domain.FAQ{Title: "Refund Policy", Content: "30 days"})
	req := httptest.NewRequest("POST", "/api/v1/faqs", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created domain.FAQ
	json.NewDecoder(rr.Body).Decode(&created)
	if created.ID != "faq-1" {
		t.Errorf("expected assigned ID, got %+v", created)
	}
}

func TestHandleCreateFAQ_InvalidJSON(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/faqs", bytes.NewBufferString("invalid json"))
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleCreateFAQ_MissingFields(t *testing.T) {
	faqs := &mockFAQService{
		createFn: func(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
			return nil, domain.ErrInvalidInput
		},
	}
	server := newTestServer(nil, faqs, nil, nil)

	body, _ := json.Marshal(domain.FAQ{Title: "no content"})
	req := httptest.NewRequest("POST", "/api/v1/faqs", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleGetFAQ_NotFound(t *testing.T) {
	faqs := &mockFAQService{
		getFn: func(ctx context.Context, id string) (*domain.FAQ, error) {
			return nil, domain.ErrNotFound
		},
	}
	server := newTestServer(nil, faqs, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/faqs/missing", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestHandleUpdateFAQ(t *testing.T) {
	var gotID string
	faqs := &mockFAQService{
		updateFn: func(ctx context.Context, id string, update *domain.FAQ) (*domain.FAQ, error) {
			gotID = id
			update.ID = id
			return update, nil
		},
	}
	server := newTestServer(nil, faqs, nil, nil)

	body, _ := json.Marshal(domain.FAQ{Title: "Updated"})
	req := httptest.NewRequest("PUT", "/api/v1/faqs/faq-1", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if gotID != "faq-1" {
		t.Errorf("expected path id 'faq-1', got %q", gotID)
	}
}

func TestHandleDeleteFAQ(t *testing.T) {
	faqs := &mockFAQService{
		deleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	server := newTestServer(nil, faqs, nil, nil)

	req := httptest.NewRequest("DELETE", "/api/v1/faqs/faq-1", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleListFAQs_PassesPagination(t *testing.T) {
	var gotPage, gotLimit int
	faqs := &mockFAQService{
		listFn: func(ctx context.Context, page, limit int) (*domain.Page[*domain.FAQ], error) {
			gotPage, gotLimit = page, limit
			return &domain.Page[*domain.FAQ]{
				Data:       []*domain.FAQ{},
				Pagination: domain.NewPagination(page, limit, 0),
			}, nil
		},
	}
	server := newTestServer(nil, faqs, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/faqs?page=3&limit=25", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if gotPage != 3 || gotLimit != 25 {
		t.Errorf("expected page=3 limit=25, got page=%d limit=%d", gotPage, gotLimit)
	}
}

func TestHandleCreateLink(t *testing.T) {
	links := &mockLinkService{
		createFn: func(ctx context.Context, link *domain.WebLink) (*domain.WebLink, error) {
			link.ID = "link-1"
			if link.Title == "" {
				link.Title = link.URL
			}
			return link, nil
		},
	}
	server := newTestServer(nil, nil, links, nil)

	body, _ := json.Marshal(domain.WebLink{URL: "https://example.com/docs"})
	req := httptest.NewRequest("POST", "/api/v1/links", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	var created domain.WebLink
	json.NewDecoder(rr.Body).Decode(&created)
	if created.Title != "https://example.com/docs" {
		t.Errorf("expected URL fallback title, got %q", created.Title)
	}
}

func TestHandleUploadPDF(t *testing.T) {
	var gotName string
	pdfs := &mockPDFService{
		uploadFn: func(ctx context.Context, fileName string, contents io.Reader) (*domain.PDF, error) {
			gotName = fileName
			data, _ := io.ReadAll(contents)
			return &domain.PDF{ID: "pdf-1", FileName: fileName, FileSize: int64(len(data))}, nil
		},
	}
	server := newTestServer(nil, nil, nil, pdfs)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "manual.pdf")
	part.Write([]byte("%PDF-1.4 fake"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/pdfs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if gotName != "manual.pdf" {
		t.Errorf("expected file name 'manual.pdf', got %q", gotName)
	}
}

func TestHandleUploadPDF_MissingFile(t *testing.T) {
	server := newTestServer(nil, nil, nil, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "not a file")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/pdfs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleDownloadPDF(t *testing.T) {
	pdfs := &mockPDFService{
		openFileFn: func(ctx context.Context, id string) (io.ReadCloser, *domain.PDF, error) {
			content := "%PDF-1.4 stored bytes"
			pdf := &domain.PDF{ID: id, FileName: "manual.pdf", FileSize: int64(len(content))}
			return io.NopCloser(strings.NewReader(content)), pdf, nil
		},
	}
	server := newTestServer(nil, nil, nil, pdfs)

	req := httptest.NewRequest("GET", "/api/v1/pdfs/pdf-1/file", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "manual.pdf") {
		t.Errorf("expected file name in disposition, got %q", cd)
	}
	if !strings.Contains(rr.Body.String(), "stored bytes") {
		t.Error("expected file contents in body")
	}
}

func TestHandleDownloadPDF_NotFound(t *testing.T) {
	pdfs := &mockPDFService{
		openFileFn: func(ctx context.Context, id string) (io.ReadCloser, *domain.PDF, error) {
			return nil, nil, domain.ErrNotFound
		},
	}
	server := newTestServer(nil, nil, nil, pdfs)

	req := httptest.NewRequest("GET", "/api/v1/pdfs/missing/file", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusTeapot, map[string]string{"hello": "world"})

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

func TestWriteServiceError_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidQuery, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrAlreadyExists, http.StatusConflict},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		writeServiceError(rr, tc.err)
		if rr.Code != tc.want {
			t.Errorf("error %v: expected status %d, got %d", tc.err, tc.want, rr.Code)
		}
	}
}
