package http

import (
	"net/http"

	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/utils"
	"github.com/MKhiriev/edsc-portals/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPortals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	summaries, err := h.services.PortalService.ListPortals(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPortals").Msg("error listing portals")
		h.writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, summaries, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listPortals").Msg("error writing response")
	}
}

func (h *Handler) getPortal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	portalID := chi.URLParam(r, "portalID")

	resolved, err := h.services.PortalService.ResolvePortal(r.Context(), portalID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPortal").Str("portal_id", portalID).Msg("error resolving portal")
		h.writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, resolved, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getPortal").Msg("error writing response")
	}
}

func (h *Handler) isDefaultPortal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	portalID := chi.URLParam(r, "portalID")

	response := models.DefaultPortalResponse{
		PortalID:  portalID,
		IsDefault: h.services.PortalService.IsDefaultPortal(portalID),
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.isDefaultPortal").Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	// server-side failures are not echoed to callers
	var message string
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	utils.WriteError(w, message, status)
}
