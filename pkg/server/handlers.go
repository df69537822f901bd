package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/io"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/pipeline"
	"github.com/matzehuels/tempo/pkg/reconcile"
)

// ReconcileRequest is the body of POST /v1/reconcile.
type ReconcileRequest struct {
	From     io.Document `json:"from"`
	To       io.Document `json:"to"`
	Format   string      `json:"format,omitempty"`
	Detailed bool        `json:"detailed,omitempty"`
}

// ReconcileResponse is returned for the text and json formats.
type ReconcileResponse struct {
	Script     reconcile.Script `json:"script"`
	Text       string           `json:"text"`
	Noop       bool             `json:"noop"`
	Duplicates []string         `json:"duplicates,omitempty"`
}

// LayoutRequest is the body of POST /v1/layout. Config keys that are
// omitted keep their layout.DefaultConfig value.
type LayoutRequest struct {
	Snapshot io.Document    `json:"snapshot"`
	Width    float64        `json:"width,omitempty"`
	Height   float64        `json:"height,omitempty"`
	Config   *layout.Config `json:"config,omitempty"`
}

type errorResponse struct {
	Error string       `json:"error"`
	Code  terrors.Code `json:"code,omitempty"`
}

var contentTypes = map[string]string{
	pipeline.FormatDOT: "text/vnd.graphviz",
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatPDF: "application/pdf",
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	var req ReconcileRequest
	if !s.decode(w, r, &req) {
		return
	}
	from, err := req.From.Snapshot()
	if err != nil {
		s.fail(w, fmt.Errorf("from: %w", err))
		return
	}
	to, err := req.To.Snapshot()
	if err != nil {
		s.fail(w, fmt.Errorf("to: %w", err))
		return
	}

	res, err := s.runner.Diff(r.Context(), from, to, pipeline.DiffOptions{
		Format:   req.Format,
		Detailed: req.Detailed,
		Logger:   s.logger,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	setCache(w, res.CacheHit)

	if ct, ok := contentTypes[req.Format]; ok {
		w.Header().Set("Content-Type", ct)
		w.Write(res.Output)
		return
	}
	s.respond(w, http.StatusOK, ReconcileResponse{
		Script:     nonNil(res.Script),
		Text:       pipeline.FormatScript(res.Script),
		Noop:       res.Script.IsNoop(),
		Duplicates: res.Duplicates,
	})
}

func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.PackOptions
	if !s.decode(w, r, &opts) {
		return
	}
	res, err := s.runner.Pack(r.Context(), opts)
	if err != nil {
		s.fail(w, err)
		return
	}
	setCache(w, res.CacheHit)
	s.respond(w, http.StatusOK, res)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	cfg := layout.DefaultConfig()
	req := LayoutRequest{Config: &cfg}
	if !s.decode(w, r, &req) {
		return
	}
	snap, err := req.Snapshot.Snapshot()
	if err != nil {
		s.fail(w, err)
		return
	}
	res, err := s.runner.Layout(r.Context(), snap, pipeline.LayoutOptions{
		Width:  req.Width,
		Height: req.Height,
		Config: req.Config,
		Logger: s.logger,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	setCache(w, res.CacheHit)
	s.respond(w, http.StatusOK, res)
}

// decode reads a JSON body into v, writing a 400 response on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respond(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return false
		}
		s.fail(w, terrors.Wrap(terrors.ErrCodeInvalidInput, err, "decode request"))
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	code := terrors.GetCode(err)
	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	s.respond(w, status, errorResponse{Error: err.Error(), Code: code})
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

func statusFor(code terrors.Code) int {
	switch {
	case code == terrors.ErrCodeNotFound || code == terrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case strings.HasPrefix(string(code), "INVALID_"), strings.HasPrefix(string(code), "MISSING_"):
		return http.StatusBadRequest
	case code == terrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func setCache(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
		return
	}
	w.Header().Set("X-Cache", "miss")
}

func nonNil(s reconcile.Script) reconcile.Script {
	if s == nil {
		return reconcile.Script{}
	}
	return s
}
