package http

import (
	"net/http"
	"strconv"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/service"
	"github.com/beatvault/beatvault/internal/utils"
	"github.com/beatvault/beatvault/models"
)

func (h *Handler) adminLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := service.Authorize(session, models.RoleAdmin); err != nil {
		log.Warn().Str("username", session.Username).Msg("audit log access rejected")
		writeError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.services.AuditService.Recent(ctx, limit)
	if err != nil {
		log.Err(err).Msg("audit listing failed")
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}

	if _, err := utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		log.Err(err).Msg("writing audit response failed")
	}
}
