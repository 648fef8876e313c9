package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-plot-style/internal/app"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/models"
)

func (h *Handler) listStyles(w http.ResponseWriter, r *http.Request) {
	styles, err := h.services.StyleService.ListStyles(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgErrorListingStyles)
		return
	}
	utils.WriteJSON(w, styles, http.StatusOK)
}

// getStyle serves a stored style as rc text (default), as the stored record
// in JSON, or as a key/value mapping in YAML. The checksum doubles as ETag.
func (h *Handler) getStyle(w http.ResponseWriter, r *http.Request) {
	format, err := responseFormat(r, formatRC)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	stored, err := h.services.StyleService.GetStyle(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err, app.MsgErrorGettingStyle)
		return
	}

	etag := `"` + stored.Checksum + `"`
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	switch format {
	case formatJSON:
		utils.WriteJSON(w, stored, http.StatusOK)
	case formatYAML:
		doc, err := style.ParseString(stored.Body, style.WithSource("db:"+stored.Name))
		if err != nil {
			writeError(w, r, err, app.MsgStoredStyleInvalid)
			return
		}
		utils.WriteYAML(w, doc.Map(), http.StatusOK)
	default:
		utils.WriteRC(w, []byte(stored.Body), http.StatusOK)
	}
}

func (h *Handler) putStyle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStyleBodySize))
	if err != nil {
		writeError(w, r, err, app.MsgErrorReadingBody)
		return
	}

	name := chi.URLParam(r, "name")
	saved, created, err := h.services.StyleService.SaveStyle(r.Context(), name, body)
	if err != nil {
		writeError(w, r, err, app.MsgErrorSavingStyle)
		return
	}

	log.Info().Str("name", name).Bool("created", created).Msg("style saved")

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	w.Header().Set("ETag", `"`+saved.Checksum+`"`)
	utils.WriteJSON(w, models.SaveStyleResponse{
		Style: models.StyleSummary{
			Name:      saved.Name,
			Checksum:  saved.Checksum,
			UpdatedAt: saved.UpdatedAt,
		},
		Created: created,
	}, status)
}

func (h *Handler) deleteStyle(w http.ResponseWriter, r *http.Request) {
	if err := h.services.StyleService.DeleteStyle(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, r, err, app.MsgErrorDeletingStyle)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateStyle checks the posted document. A malformed line answers 400
// with its line number; everything else is reported in a 200 body.
func (h *Handler) validateStyle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStyleBodySize))
	if err != nil {
		writeError(w, r, err, app.MsgErrorReadingBody)
		return
	}

	report, err := h.services.StyleService.Validate(r.Context(), body)
	if err != nil {
		writeError(w, r, err, app.MsgErrorValidatingStyle)
		return
	}
	utils.WriteJSON(w, report, http.StatusOK)
}
