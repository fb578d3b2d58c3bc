package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"svokit/internal/email"
	"svokit/internal/pagination"
)

type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     email.Address `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type ListContactsResult struct {
	Items      []Contact `json:"items"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// ContactService takes raw user input; normalization happens behind it.
type ContactService interface {
	RegisterContact(ctx context.Context, name, email, phone string) (Contact, error)
	GetContact(ctx context.Context, email string) (Contact, error)
	ListContacts(ctx context.Context, limit int, cursor *pagination.Cursor) (ListContactsResult, error)
	RemoveContact(ctx context.Context, email string) error
}

type createContactReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
		return
	}

	c, err := s.deps.ContactSvc.RegisterContact(r.Context(), trim(req.Name), req.Email, trim(req.Phone))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	c, err := s.deps.ContactSvc.GetContact(r.Context(), emailParam(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.ContactSvc.RemoveContact(r.Context(), emailParam(r)); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r, 50, 1, 200)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid limit"})
		return
	}

	cur, err := parseCursor(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.deps.ContactSvc.ListContacts(r.Context(), limit, cur)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
