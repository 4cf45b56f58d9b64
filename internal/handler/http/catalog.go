package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/service"
	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/internal/utils"
	"github.com/beatvault/beatvault/models"
)

// uploadResponse pairs the stored track with the URL the client PUTs the
// track bytes to.
type uploadResponse struct {
	Track     models.Track `json:"track"`
	UploadURL string       `json:"upload_url"`
}

func (h *Handler) uploadTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input service.TrackUpload
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	track, uploadURL, err := h.services.CatalogService.Upload(ctx, session, input)
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("track upload rejected")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, uploadResponse{Track: track, UploadURL: uploadURL}, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing upload response failed")
	}
}

func (h *Handler) listTracks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := store.TrackFilter{
		Genre:          r.URL.Query().Get("genre"),
		ArtistUsername: r.URL.Query().Get("artist"),
	}

	tracks, err := h.services.CatalogService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("catalog listing failed")
		writeError(w, err)
		return
	}
	if tracks == nil {
		tracks = []models.Track{}
	}

	if _, err := utils.WriteJSON(w, tracks, http.StatusOK); err != nil {
		log.Err(err).Msg("writing catalog response failed")
	}
}

func (h *Handler) trendingTracks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tracks, err := h.services.CatalogService.Trending(ctx, limit)
	if err != nil {
		log.Err(err).Msg("trending listing failed")
		writeError(w, err)
		return
	}
	if tracks == nil {
		tracks = []models.Track{}
	}

	if _, err := utils.WriteJSON(w, tracks, http.StatusOK); err != nil {
		log.Err(err).Msg("writing trending response failed")
	}
}

func (h *Handler) artistPerformance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	sales, err := h.services.CatalogService.Performance(ctx, session)
	if err != nil {
		log.Err(err).Msg("performance listing rejected")
		writeError(w, err)
		return
	}
	if sales == nil {
		sales = []models.SaleRecord{}
	}

	if _, err := utils.WriteJSON(w, sales, http.StatusOK); err != nil {
		log.Err(err).Msg("writing performance response failed")
	}
}
