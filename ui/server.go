// Package ui serves a small web inspector: paste VB6 source, see the
// tree and the failures the tolerant parse recorded.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dhamidi/vbsix/vb6/parser"
)

//go:embed templates
var embeddedFS embed.FS

type Server struct {
	mux       *http.ServeMux
	templates *template.Template
}

func NewServer() (*Server, error) {
	templates, err := template.ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		mux:       http.NewServeMux(),
		templates: templates,
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/parse", s.handleParse)
	s.mux.HandleFunc("/api/tokenize", s.handleTokenize)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type parseRequest struct {
	File   string `json:"file"`
	Source string `json:"source"`
}

type parseResponse struct {
	Tree     parser.SerialNode `json:"tree"`
	Failures []failureJSON     `json:"failures"`
}

type tokenizeResponse struct {
	Tokens   []tokenJSON   `json:"tokens"`
	Failures []failureJSON `json:"failures"`
}

type tokenJSON struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
}

type failureJSON struct {
	Kind      string `json:"kind"`
	Detail    string `json:"detail,omitempty"`
	Offset    int    `json:"offset"`
	LineStart int    `json:"lineStart"`
	LineEnd   int    `json:"lineEnd"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := readRequest(w, r)
	if !ok {
		return
	}

	result := parser.Parse(req.File, req.Source)
	writeJSON(w, parseResponse{
		Tree:     result.MustValue().Serializable(),
		Failures: failuresToJSON(result.Failures()),
	})
}

func (s *Server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	req, ok := readRequest(w, r)
	if !ok {
		return
	}

	result := parser.Tokenize(req.File, req.Source)
	tokens := result.MustValue()
	out := tokenizeResponse{
		Tokens:   make([]tokenJSON, len(tokens)),
		Failures: failuresToJSON(result.Failures()),
	}
	for i, tok := range tokens {
		out.Tokens[i] = tokenJSON{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Offset: tok.Offset,
			Line:   tok.Line,
		}
	}
	writeJSON(w, out)
}

func readRequest(w http.ResponseWriter, r *http.Request) (parseRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return parseRequest{}, false
	}
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return parseRequest{}, false
	}
	if req.File == "" {
		req.File = "untitled.bas"
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func failuresToJSON(failures []parser.Failure) []failureJSON {
	out := make([]failureJSON, len(failures))
	for i, f := range failures {
		out[i] = failureJSON{
			Kind:      string(f.Kind),
			Detail:    f.Detail,
			Offset:    f.Offset,
			LineStart: f.LineStart,
			LineEnd:   f.LineEnd,
		}
	}
	return out
}
