// Cinematch - Genre Similarity Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/search"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// maxFormBytes bounds POST bodies parsed by the page handler.
const maxFormBytes = 64 << 10

// Handler serves the page and JSON endpoints from one search.Service.
type Handler struct {
	service   *search.Service
	page      *template.Template
	startTime time.Time
	version   string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Version is reported by the health endpoints.
	Version string
}

// NewHandler parses the embedded page template and binds it to svc.
func NewHandler(svc *search.Service, opts HandlerOptions) (*Handler, error) {
	if svc == nil {
		return nil, ErrNilService
	}
	page, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, err
	}
	return &Handler{
		service:   svc,
		page:      page,
		startTime: time.Now(),
		version:   opts.Version,
	}, nil
}

// sortOption is one entry of the sort dropdown.
type sortOption struct {
	Value    string
	Label    string
	Selected bool
}

// genreOption is one entry of the genre dropdown.
type genreOption struct {
	Value    string
	Selected bool
}

// pageData is the template model for the search page.
type pageData struct {
	Nonce   string
	Request search.Request
	Result  *search.Result
	Genres  []genreOption
	Sorts   []sortOption
}

func newPageData(req search.Request, res *search.Result, nonce string) *pageData {
	genres := make([]genreOption, len(res.Genres))
	for i, g := range res.Genres {
		genres[i] = genreOption{Value: g, Selected: g == req.Genre}
	}
	return &pageData{
		Nonce:   nonce,
		Request: req,
		Result:  res,
		Genres:  genres,
		Sorts: []sortOption{
			{Value: string(search.SortNone), Label: "Catalog order", Selected: req.Sort == search.SortNone},
			{Value: string(search.SortAZ), Label: "Title A-Z", Selected: req.Sort == search.SortAZ},
			{Value: string(search.SortZA), Label: "Title Z-A", Selected: req.Sort == search.SortZA},
		},
	}
}

// Index renders the search page for GET / and POST /.
//
// Form fields movie, genre and sort are read from the query string or an
// urlencoded POST body. Missing or malformed fields mean no filter.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	req := search.ParseRequest(r.FormValue("movie"), r.FormValue("genre"), r.FormValue("sort"))
	res, err := h.service.Search(r.Context(), req)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Search failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, newPageData(req, res, cspNonce(r.Context()))); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute index template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}
