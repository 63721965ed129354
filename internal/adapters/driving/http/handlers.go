package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/custodia-labs/helpdesk-search/internal/core/domain"
)

// maxUploadSize bounds PDF uploads to 25 MiB
const maxUploadSize = 25 << 20

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and cache connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A backing store is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	// Cache is optional infrastructure; search degrades without it, so
	// a down Redis does not fail readiness
	if s.redisClient != nil {
		if err := s.redisClient.Ping(ctx); err != nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "cache": "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Search endpoints

// handleSearch godoc
// @Summary      Search all content
// @Description  Runs a full-text search across FAQs, web links and PDFs, falling back to prefix and substring matching for queries the full-text index cannot serve
// @Tags         Search
// @Produce      json
// @Param        q      query     string  true   "Search query; supports quoted phrases and -exclusions"
// @Param        type   query     string  false  "Restrict to one content type"  Enums(faq, link, pdf)
// @Param        limit  query     int     false  "Maximum merged results (default 20, max 100)"
// @Success      200    {object}  domain.SearchResponse
// @Failure      400    {object}  ErrorResponse  "Blank query or unknown type"
// @Failure      503    {object}  ErrorResponse  "Content store unavailable"
// @Router       /api/v1/search [get]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	opts := domain.SearchOptions{}
	if typ := r.URL.Query().Get("type"); typ != "" {
		parsed, err := domain.ParseContentType(typ)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown content type %q", typ))
			return
		}
		opts.Type = parsed
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		opts.Limit = limit
	}

	resp, err := s.searchService.Search(r.Context(), query, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleSuggestions godoc
// @Summary      Title suggestions
// @Description  Returns autocomplete suggestions for a partial query. Partials shorter than two characters yield an empty list.
// @Tags         Search
// @Produce      json
// @Param        q  query     string  true  "Partial query"
// @Success      200  {object}  domain.SuggestResponse
// @Router       /api/v1/search/suggestions [get]
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.searchService.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// FAQ endpoints

// handleCreateFAQ godoc
// @Summary      Create FAQ
// @Description  Creates a new FAQ entry
// @Tags         FAQs
// @Accept       json
// @Produce      json
// @Param        request  body      domain.FAQ  true  "FAQ to create"
// @Success      201      {object}  domain.FAQ
// @Failure      400      {object}  ErrorResponse  "Invalid request body or missing fields"
// @Router       /api/v1/faqs [post]
func (s *Server) handleCreateFAQ(w http.ResponseWriter, r *http.Request) {
	var faq domain.FAQ
	if err := json.NewDecoder(r.Body).Decode(&faq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.faqService.Create(r.Context(), &faq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handleListFAQs godoc
// @Summary      List FAQs
// @Description  Lists FAQ entries, newest first
// @Tags         FAQs
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  domain.Page[domain.FAQ]
// @Router       /api/v1/faqs [get]
func (s *Server) handleListFAQs(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationParams(r)
	resp, err := s.faqService.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetFAQ godoc
// @Summary      Get FAQ
// @Description  Returns one FAQ entry by ID
// @Tags         FAQs
// @Produce      json
// @Param        id   path      string  true  "FAQ ID"
// @Success      200  {object}  domain.FAQ
// @Failure      404  {object}  ErrorResponse  "FAQ not found"
// @Router       /api/v1/faqs/{id} [get]
func (s *Server) handleGetFAQ(w http.ResponseWriter, r *http.Request) {
	faq, err := s.faqService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, faq)
}

// handleUpdateFAQ godoc
// @Summary      Update FAQ
// @Description  Updates an FAQ entry; omitted fields keep their current value
// @Tags         FAQs
// @Accept       json
// @Produce      json
// @Param        id       path      string      true  "FAQ ID"
// @Param        request  body      domain.FAQ  true  "Fields to update"
// @Success      200      {object}  domain.FAQ
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      404      {object}  ErrorResponse  "FAQ not found"
// @Router       /api/v1/faqs/{id} [put]
func (s *Server) handleUpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var update domain.FAQ
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	faq, err := s.faqService.Update(r.Context(), r.PathValue("id"), &update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, faq)
}

// handleDeleteFAQ godoc
// @Summary      Delete FAQ
// @Description  Deletes an FAQ entry
// @Tags         FAQs
// @Produce      json
// @Param        id   path      string  true  "FAQ ID"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse  "FAQ not found"
// @Router       /api/v1/faqs/{id} [delete]
func (s *Server) handleDeleteFAQ(w http.ResponseWriter, r *http.Request) {
	if err := s.faqService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Web link endpoints

// handleCreateLink godoc
// @Summary      Create web link
// @Description  Indexes an external page. Missing title, description and body text are filled from the scraped page when scraping succeeds.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        request  body      domain.WebLink  true  "Link to index"
// @Success      201      {object}  domain.WebLink
// @Failure      400      {object}  ErrorResponse  "Invalid request body or missing URL"
// @Router       /api/v1/links [post]
func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	var link domain.WebLink
	if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.linkService.Create(r.Context(), &link)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handleListLinks godoc
// @Summary      List web links
// @Description  Lists indexed links, newest first
// @Tags         Links
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  domain.Page[domain.WebLink]
// @Router       /api/v1/links [get]
func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationParams(r)
	resp, err := s.linkService.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetLink godoc
// @Summary      Get web link
// @Description  Returns one indexed link by ID
// @Tags         Links
// @Produce      json
// @Param        id   path      string  true  "Link ID"
// @Success      200  {object}  domain.WebLink
// @Failure      404  {object}  ErrorResponse  "Link not found"
// @Router       /api/v1/links/{id} [get]
func (s *Server) handleGetLink(w http.ResponseWriter, r *http.Request) {
	link, err := s.linkService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, link)
}

// handleUpdateLink godoc
// @Summary      Update web link
// @Description  Updates an indexed link; omitted fields keep their current value
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Link ID"
// @Param        request  body      domain.WebLink  true  "Fields to update"
// @Success      200      {object}  domain.WebLink
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      404      {object}  ErrorResponse  "Link not found"
// @Router       /api/v1/links/{id} [put]
func (s *Server) handleUpdateLink(w http.ResponseWriter, r *http.Request) {
	var update domain.WebLink
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := s.linkService.Update(r.Context(), r.PathValue("id"), &update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, link)
}

// handleDeleteLink godoc
// @Summary      Delete web link
// @Description  Removes a link from the index
// @Tags         Links
// @Produce      json
// @Param        id   path      string  true  "Link ID"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse  "Link not found"
// @Router       /api/v1/links/{id} [delete]
func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := s.linkService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// PDF endpoints

// handleUploadPDF godoc
// @Summary      Upload PDF
// @Description  Uploads a PDF document. Text is extracted for the search index; extraction failures still store the file.
// @Tags         PDFs
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file (max 25 MiB)"
// @Success      201   {object}  domain.PDF
// @Failure      400   {object}  ErrorResponse  "Missing or oversized file"
// @Router       /api/v1/pdfs [post]
func (s *Server) handleUploadPDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	pdf, err := s.pdfService.Upload(r.Context(), header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, pdf)
}

// handleListPDFs godoc
// @Summary      List PDFs
// @Description  Lists uploaded PDF documents, newest first. Extracted text is omitted from listings.
// @Tags         PDFs
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  domain.Page[domain.PDF]
// @Router       /api/v1/pdfs [get]
func (s *Server) handleListPDFs(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationParams(r)
	resp, err := s.pdfService.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetPDF godoc
// @Summary      Get PDF metadata
// @Description  Returns one PDF record by ID
// @Tags         PDFs
// @Produce      json
// @Param        id   path      string  true  "PDF ID"
// @Success      200  {object}  domain.PDF
// @Failure      404  {object}  ErrorResponse  "PDF not found"
// @Router       /api/v1/pdfs/{id} [get]
func (s *Server) handleGetPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := s.pdfService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pdf)
}

// handleDownloadPDF godoc
// @Summary      Download PDF file
// @Description  Streams the stored PDF file
// @Tags         PDFs
// @Produce      application/pdf
// @Param        id   path  string  true  "PDF ID"
// @Success      200  {file}  file
// @Failure      404  {object}  ErrorResponse  "PDF not found"
// @Router       /api/v1/pdfs/{id}/file [get]
func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	f, pdf, err := s.pdfService.OpenFile(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.FileName))
	if pdf.FileSize > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(pdf.FileSize, 10))
	}
	if _, err := io.Copy(w, f); err != nil {
		log.Printf("pdf download interrupted: %v", err)
	}
}

// handleDeletePDF godoc
// @Summary      Delete PDF
// @Description  Deletes a PDF record and its stored file
// @Tags         PDFs
// @Produce      json
// @Param        id   path      string  true  "PDF ID"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse  "PDF not found"
// @Router       /api/v1/pdfs/{id} [delete]
func (s *Server) handleDeletePDF(w http.ResponseWriter, r *http.Request) {
	if err := s.pdfService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Helpers

// paginationParams reads page/limit query parameters, leaving defaults
// to the service layer
func paginationParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// writeServiceError maps domain errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, "query must not be empty")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "content store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
