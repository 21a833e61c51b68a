// Package webui exposes the HTTP surface of the converter: an HTML form for
// uploading a shipment spreadsheet and handlers that stream back either the
// Super Dispatch import CSV or the cleaned-up "readable" workbook.
//
// Routes:
//
//	GET  /         → upload form
//	POST /convert  → runs the selected workflow; responds with a download
//	GET  /metrics  → Prometheus scrape endpoint (when configured)
//
// All parsing and transformation is in-memory and per-request; the handlers
// own the blocking I/O on both sides of the pure transform engine.
package webui

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	"dispatchcsv/internal/logging"
	"dispatchcsv/internal/metrics"
	csvparser "dispatchcsv/internal/parser/csv"
	"dispatchcsv/internal/parser/xlsx"
	"dispatchcsv/internal/schema"
	"dispatchcsv/internal/transform"
	"dispatchcsv/internal/writer/csvout"
	"dispatchcsv/internal/writer/xlsxout"
	"dispatchcsv/pkg/records"
)

// Config controls server behavior.
type Config struct {
	// MaxUploadBytes caps the accepted upload size.
	MaxUploadBytes int64

	// Metrics, when non-nil, is mounted at /metrics.
	Metrics http.Handler

	// Now supplies the time used for download filenames; nil means time.Now.
	Now func() time.Time
}

// Server wraps the route mux and the embedded page template.
type Server struct {
	cfg  Config
	mux  *http.ServeMux
	tmpl *template.Template
}

// NewServer constructs a Server with routes and the embedded template.
func NewServer(cfg Config) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 32 << 20
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Server{
		cfg:  cfg,
		mux:  http.NewServeMux(),
		tmpl: template.Must(template.New("index").Parse(indexHTML)),
	}
	s.routes()
	return s
}

// Handler returns the root handler for mounting in an http.Server.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/convert", s.handleConvert)
	if s.cfg.Metrics != nil {
		s.mux.Handle("/metrics", s.cfg.Metrics)
	}
}

// handleIndex renders the upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	_ = s.tmpl.Execute(w, nil)
}

// handleConvert receives the multipart upload and dispatches on which file
// input was used: "origin" runs the readable cleanup, "processed" runs the
// import-template transform. The origin input wins when both are filled.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	start := time.Now()
	name, data, workflow, err := uploadedFile(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logging.L().Info("upload received",
		"workflow", workflow,
		"file", name,
		"bytes", len(data),
		"xxh3", fmt.Sprintf("%016x", xxh3.Hash(data)),
	)

	raw, err := parseUpload(name, data)
	if err != nil {
		metrics.RecordConversion(workflow, err, time.Since(start), 0)
		http.Error(w, "parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	var (
		body     []byte
		filename string
		mimetype string
	)
	switch workflow {
	case "readable":
		out := transform.Readable(raw)
		body, err = xlsxout.Encode(out)
		filename = downloadName(s.cfg.Now(), "readable", "xlsx")
		mimetype = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		out := transform.Apply(raw, schema.Template())
		body, err = csvout.Encode(out)
		filename = downloadName(s.cfg.Now(), "superdispatch", "csv")
		mimetype = "text/csv; charset=utf-8"
	}
	metrics.RecordConversion(workflow, err, time.Since(start), len(raw))
	if err != nil {
		logging.L().Error("encode failed", "workflow", workflow, "err", err)
		http.Error(w, "encode result: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mimetype)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(body)
}

// uploadedFile pulls the first populated file input from the form and reads
// it fully. It returns the original filename, the payload, and the workflow
// the input selects.
func uploadedFile(r *http.Request) (name string, data []byte, workflow string, err error) {
	for _, in := range []struct{ field, workflow string }{
		{"origin", "readable"},
		{"processed", "superdispatch"},
	} {
		f, hdr, ferr := r.FormFile(in.field)
		if errors.Is(ferr, http.ErrMissingFile) {
			continue
		}
		if ferr != nil {
			return "", nil, "", fmt.Errorf("read form: %w", ferr)
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return "", nil, "", fmt.Errorf("read upload: %w", err)
		}
		return hdr.Filename, data, in.workflow, nil
	}
	return "", nil, "", errors.New("no file uploaded")
}

// parseUpload picks a parser by file extension. CSV is parsed directly;
// anything else is treated as an Excel workbook, matching what the form
// accepts.
func parseUpload(name string, data []byte) ([]records.Record, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		_, recs, err := csvparser.Parse(data, csvparser.Options{})
		return recs, err
	}
	_, recs, err := xlsx.Parse(data)
	return recs, err
}

// indexHTML is the embedded upload page.
//
//go:embed index.tmpl.html
var indexHTML string
