// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"net/http"

	"github.com/strataio/strata/internal/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Error().Err(err).Str("event", "api.encode_error").Msg("failed to encode response")
	}
}

// handleStatus returns the framework status snapshot as JSON. Fresh entries
// from the last-known-good cache are served directly, so status reads between
// snapshot ticks do not re-run the probes. A miss (or an expired entry) falls
// through to a live evaluation which repopulates the cache.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	statusRequestsTotal.Inc()

	if cached := s.cache.Get(); cached != nil {
		writeJSON(w, r, http.StatusOK, cached)
		return
	}

	snap := s.framework.Snapshot(r.Context())
	s.cache.Set(snap)

	writeJSON(w, r, http.StatusOK, snap)
}

// handleStatusText returns the multi-line plain text status block.
func (s *Server) handleStatusText(w http.ResponseWriter, r *http.Request) {
	statusRequestsTotal.Inc()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.framework.Status(r.Context())))
}

type layerInfo struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// handleLayers lists the three layers with their identifiers.
func (s *Server) handleLayers(w http.ResponseWriter, r *http.Request) {
	layers := []layerInfo{
		{Name: s.framework.Domain().Name(), Identifier: s.framework.Domain().Identifier()},
		{Name: s.framework.Infrastructure().Name(), Identifier: s.framework.Infrastructure().Identifier()},
		{Name: s.framework.Application().Name(), Identifier: s.framework.Application().Identifier()},
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"framework": s.framework.Identifier(),
		"layers":    layers,
	})
}
