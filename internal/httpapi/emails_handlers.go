package httpapi

import (
	"encoding/json"
	"net/http"

	"svokit/internal/email"
	"svokit/internal/svo"
)

type parseEmailReq struct {
	Value string `json:"value"`
}

type ParsedEmail struct {
	Status    string `json:"status"`
	Email     string `json:"email"`
	Length    int    `json:"length"`
	IsIPBased bool   `json:"is_ip_based"`
	LocalPart string `json:"local_part"`
	Domain    string `json:"domain"`
}

type UnparsableEmail struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Attempted string `json:"attempted"`
}

func (s *Server) handleParseEmail(w http.ResponseWriter, r *http.Request) {
	var req parseEmailReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
		return
	}

	res := email.TryParse(req.Value)
	switch res.Kind() {
	case svo.KindAbsent:
		writeJSON(w, http.StatusOK, map[string]any{"status": res.Kind().String()})

	case svo.KindUnparsable:
		u := res.Unparsable()
		// the attempted value goes back to the caller, never into the log
		s.deps.Logger.Debug().Int("input_len", len(u.Attempted)).Msg("unparsable email")
		writeJSON(w, http.StatusUnprocessableEntity, UnparsableEmail{
			Status:    res.Kind().String(),
			Error:     u.Message,
			Attempted: u.Attempted,
		})

	default:
		a, _ := res.Value()
		writeJSON(w, http.StatusOK, ParsedEmail{
			Status:    res.Kind().String(),
			Email:     a.String(),
			Length:    a.Len(),
			IsIPBased: a.IsIPBased(),
			LocalPart: a.LocalPart(),
			Domain:    a.Domain(),
		})
	}
}
