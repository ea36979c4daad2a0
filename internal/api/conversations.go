package api

import (
	"net/http"
)

// listConversations handles GET /api/conversations. Missing or malformed
// files already collapse to an empty store inside the loader, so any error
// here is an unclassified I/O failure.
func (s *Server) listConversations(w http.ResponseWriter, r *http.Request) {
	store, err := s.loader.Load(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to load conversations", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load conversations"})
		return
	}
	writeJSON(w, http.StatusOK, store)
}
