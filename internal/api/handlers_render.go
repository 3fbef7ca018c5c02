package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/lecturemap/internal/mermaid"
	"github.com/dgallion1/lecturemap/internal/pipeline"
)

// renderRequest is the JSON body accepted by the summary endpoints.
type renderRequest struct {
	Summary     string `json:"summary"`
	Orientation string `json:"orientation,omitempty"`
	MaxNodes    int    `json:"max_nodes,omitempty"`
	MaxChildren int    `json:"max_children,omitempty"`
}

// decodeJSON reads a size-limited JSON body into v and writes the error
// response itself when it fails.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxSummaryBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxSummaryBytes), http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// render decodes a renderRequest and returns the cached or fresh result.
func (s *Server) render(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	var req renderRequest
	if !s.decodeJSON(w, r, &req) {
		return nil, false
	}
	opts, err := s.mermaidOptions(req.Orientation, req.MaxNodes, req.MaxChildren)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return s.renderer.Render(req.Summary, opts), true
}

// mermaidOptions builds generator options, using the configured default
// orientation when none is given.
func (s *Server) mermaidOptions(orientation string, maxNodes, maxChildren int) (mermaid.Options, error) {
	if orientation == "" {
		orientation = s.cfg.DefaultOrientation
	}
	o, err := mermaid.ParseOrientation(orientation)
	if err != nil {
		return mermaid.Options{}, err
	}
	if maxNodes < 0 || maxChildren < 0 {
		return mermaid.Options{}, fmt.Errorf("max_nodes and max_children must not be negative")
	}
	opts := mermaid.DefaultOptions()
	opts.Orientation = o
	if maxNodes > 0 {
		opts.MaxNodes = maxNodes
	}
	if maxChildren > 0 {
		opts.MaxChildrenPerParent = maxChildren
	}
	return opts, nil
}

func (s *Server) handleMindmapGraph(w http.ResponseWriter, r *http.Request) {
	res, ok := s.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res.Graph)
}

func (s *Server) handleMindmapTree(w http.ResponseWriter, r *http.Request) {
	res, ok := s.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tree": res.Tree})
}

func (s *Server) handleMindmapOutline(w http.ResponseWriter, r *http.Request) {
	res, ok := s.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": res.Outline})
}

func (s *Server) handleMermaid(w http.ResponseWriter, r *http.Request) {
	res, ok := s.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"code":  res.Mermaid,
		"valid": res.MermaidValid,
		"error": res.MermaidError,
	})
}

func (s *Server) handleMermaidValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp := map[string]any{"valid": true}
	if err := mermaid.Validate(req.Code); err != nil {
		resp["valid"] = false
		resp["error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}
