package http

import (
	"net/http"

	"github.com/MKhiriev/go-plot-style/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	utils.WriteJSON(w, version, http.StatusOK)
}
