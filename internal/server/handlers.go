// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/woozymasta/geodoc/internal/config"
	"github.com/woozymasta/geodoc/internal/convert"
	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/processor"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// errMalformed marks request bodies that are not documents at all.
var errMalformed = errors.New("malformed request body")

// Routes registers the API handlers on a new mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/converters", s.HandleConverters)
	mux.HandleFunc("/api/convert", s.HandleConvert)
	mux.HandleFunc("/api/command", s.HandleCommand)
	return mux
}

// HandleConverters serves the list of registered converters.
func (s *ServerContext) HandleConverters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Converters)
}

// HandleConvert decodes the posted documents as ?kind= and re-encodes them in the ?to= dialect.
// The response format follows ?format=, extended JSON by default.
func (s *ServerContext) HandleConvert(w http.ResponseWriter, r *http.Request) {
	s.handleConversion(w, r, "")
}

// HandleCommand wraps the posted shapes into the geo command named by ?name=.
// Without a name each shape gets its default operator.
func (s *ServerContext) HandleCommand(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = processor.CommandDefault
	}
	s.handleConversion(w, r, name)
}

func (s *ServerContext) handleConversion(w http.ResponseWriter, r *http.Request, command string) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	q := r.URL.Query()

	kind, err := convert.ParseKind(q.Get("kind"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dialect, err := convert.ParseDialect(q.Get("to"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format, err := processor.ParseFormat(q.Get("format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sources, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	items, err := processor.ConvertAll(sources, processor.Options{Kind: kind, Dialect: dialect, Command: command})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := processor.Marshal(items, processor.WriteOptions{
		Format: format,
		Indent: s.Config.Defaults.Indent,
		Minify: s.Config.Defaults.Minify,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(data)
}

func (s *ServerContext) readBody(w http.ResponseWriter, r *http.Request) ([]any, error) {
	limit := s.Config.Server.MaxBody
	if limit <= 0 {
		limit = config.DefaultMaxBody
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return nil, errors.Wrapf(errMalformed, "%v", err)
	}

	sources, err := processor.Parse(data, isYAMLRequest(r))
	if err != nil {
		return nil, errors.Wrapf(errMalformed, "%v", err)
	}
	if len(sources) == 0 {
		return nil, errors.Wrap(errMalformed, "no documents")
	}
	return sources, nil
}

func isYAMLRequest(r *http.Request) bool {
	switch r.Header.Get("Content-Type") {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return true
	default:
		return false
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps conversion errors to status codes: malformed bodies are 400,
// documents that do not describe a valid shape are 422.
func (s *ServerContext) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)

	log.Debug().
		Err(err).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("Conversion rejected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errMalformed):
		return http.StatusBadRequest
	case errors.Is(err, convert.ErrInvalidShape),
		errors.Is(err, convert.ErrInvalidArgument),
		errors.Is(err, convert.ErrUnknownMetric),
		errors.Is(err, document.ErrNotNumeric):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
