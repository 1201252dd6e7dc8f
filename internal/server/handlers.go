package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jonathan/interview-navigator/internal/navigator"
	"github.com/jonathan/interview-navigator/internal/questionbank"
	"github.com/jonathan/interview-navigator/internal/types"
)

// createSessionRequest starts a session from a stored bank key or an inline bank.
type createSessionRequest struct {
	BankKey string          `json:"bank_key,omitempty"`
	Bank    json.RawMessage `json:"bank,omitempty"`
}

type sessionResponse struct {
	SessionID string             `json:"session_id"`
	BankKey   string             `json:"bank_key,omitempty"`
	Status    navigator.Status   `json:"status"`
	Turn      types.TurnResponse `json:"turn"`
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

// handleCreateSession starts a session and returns the opening question.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	bank, err := s.resolveBank(r, &req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	nav, err := navigator.New(bank)
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "bank", Message: err.Error()})
		return
	}

	sess := s.registry.add(req.BankKey, nav)
	turn, err := sess.nav.Start()
	if err != nil {
		s.registry.remove(sess.id)
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse{
		SessionID: sess.id,
		BankKey:   sess.bankKey,
		Status:    sess.nav.Status(),
		Turn:      turn,
	})
}

// resolveBank loads the bank named by the request, preferring the inline form.
func (s *Server) resolveBank(r *http.Request, req *createSessionRequest) (*types.QuestionBank, error) {
	if len(req.Bank) > 0 {
		bank, err := questionbank.Parse(req.Bank)
		if err != nil {
			return nil, &ErrValidation{Field: "bank", Message: err.Error()}
		}
		return bank, nil
	}
	if strings.TrimSpace(req.BankKey) == "" {
		return nil, &ErrValidation{Field: "bank_key", Message: "either bank_key or bank is required"}
	}
	bank, err := s.store.LoadBank(r.Context(), req.BankKey)
	if err != nil {
		return nil, &ErrBankNotFound{Key: req.BankKey}
	}
	return bank, nil
}

// handleGetSession reports session status without advancing it.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.registry.get(r.PathValue("id"))
	if !ok {
		s.handleError(w, &ErrSessionNotFound{SessionID: r.PathValue("id")})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id": sess.id,
		"bank_key":   sess.bankKey,
		"status":     sess.nav.Status(),
		"created_at": sess.createdAt,
	})
}

// handleSubmitAnswer processes one answer and returns the next turn.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.registry.get(r.PathValue("id"))
	if !ok {
		s.handleError(w, &ErrSessionNotFound{SessionID: r.PathValue("id")})
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess.mu.Lock()
	turn, err := sess.nav.SubmitAnswer(req.Answer)
	status := sess.nav.Status()
	sess.mu.Unlock()

	if err != nil {
		if errors.Is(err, navigator.ErrNotStarted) || errors.Is(err, navigator.ErrComplete) {
			s.errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse{
		SessionID: sess.id,
		BankKey:   sess.bankKey,
		Status:    status,
		Turn:      turn,
	})
}

// handleGetSummary returns the session report for the feedback stage.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.registry.get(r.PathValue("id"))
	if !ok {
		s.handleError(w, &ErrSessionNotFound{SessionID: r.PathValue("id")})
		return
	}

	sess.mu.Lock()
	summary := sess.nav.Summary()
	sess.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, summary)
}

// handleDeleteSession discards a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.registry.remove(r.PathValue("id")) {
		s.handleError(w, &ErrSessionNotFound{SessionID: r.PathValue("id")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetBank returns a stored question bank.
func (s *Server) handleGetBank(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	bank, err := s.store.LoadBank(r.Context(), key)
	if err != nil {
		s.handleError(w, &ErrBankNotFound{Key: key})
		return
	}
	s.jsonResponse(w, http.StatusOK, bank)
}
