package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/utils"
)

func (h *Handler) downloadTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	trackID, err := strconv.ParseInt(chi.URLParam(r, "trackID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid track id")
		http.Error(w, "invalid track id", http.StatusBadRequest)
		return
	}

	result, err := h.services.PurchaseService.Acquire(ctx, session, trackID)
	if err != nil {
		log.Err(err).Int64("track_id", trackID).Msg("track acquisition rejected")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("writing download response failed")
	}
}
