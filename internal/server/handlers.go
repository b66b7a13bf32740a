package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"dabuild/internal/analyzer"
)

// documentRequest is the request body shared by all document endpoints.
type documentRequest struct {
	YAML         string `json:"yaml"`
	DocumentName string `json:"document_name,omitempty"`
}

type parseResponse struct {
	Blocks []analyzer.BlockAnalysis `json:"blocks"`
}

type validationIssue struct {
	BlockID *string `json:"block_id"`
	Level   string  `json:"level"`
	Message string  `json:"message"`
}

type validateResponse struct {
	Issues []validationIssue `json:"issues"`
	Valid  bool              `json:"valid"`
}

type variablesResponse struct {
	Variables []analyzer.VariableInfo `json:"variables"`
}

type fieldsResponse struct {
	Suggestions []analyzer.FieldSuggestion `json:"suggestions"`
}

type saveResponse struct {
	DocumentName string `json:"document_name"`
	SavedPath    string `json:"saved_path"`
	BytesWritten int    `json:"bytes_written"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	blocks, err := s.analyzer.Analyze(req.YAML)
	if err != nil {
		var derr *analyzer.DecodeError
		if errors.As(err, &derr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{Blocks: blocks})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	messages := s.analyzer.Validate(req.YAML)
	issues := make([]validationIssue, 0, len(messages))
	for _, message := range messages {
		issues = append(issues, validationIssue{Level: "error", Message: message})
	}

	writeJSON(w, http.StatusOK, validateResponse{Issues: issues, Valid: len(issues) == 0})
}

func (s *Server) handleVariables(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, variablesResponse{Variables: s.analyzer.Variables(req.YAML)})
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, fieldsResponse{Suggestions: s.analyzer.FirstFields(req.YAML)})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := s.store.Save(req.YAML, req.DocumentName)
	if err != nil {
		s.logger.Warn("save failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	savedPath := result.Path
	if rel, err := filepath.Rel(s.store.Root(), result.Path); err == nil {
		savedPath = rel
	}

	writeJSON(w, http.StatusOK, saveResponse{
		DocumentName: result.DocumentName,
		SavedPath:    savedPath,
		BytesWritten: result.BytesWritten,
	})
}

// decodeRequest enforces POST and parses the JSON body. It writes the error
// response itself and reports success through the second return value.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (documentRequest, bool) {
	var req documentRequest
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
