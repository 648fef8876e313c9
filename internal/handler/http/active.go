package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/models"
)

var errNoActiveStyle = errors.New("no startup styles configured")

type activeResponse struct {
	paramsResponse `yaml:",inline"`

	Version  uint64    `json:"version" yaml:"version"`
	LoadedAt time.Time `json:"loaded_at" yaml:"loaded_at"`
}

// getActiveStyle serves the startup composition held by the server. The
// reload version doubles as ETag.
func (h *Handler) getActiveStyle(w http.ResponseWriter, r *http.Request) {
	format, err := responseFormat(r, formatJSON)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if h.services.ActiveStyle == nil {
		writeError(w, r, errNoActiveStyle, "")
		return
	}

	state := h.services.ActiveStyle.Get()

	etag := `"v` + strconv.FormatUint(state.Version, 10) + `"`
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if format == formatRC {
		utils.WriteRC(w, style.Marshal(state.Document), http.StatusOK)
		return
	}

	resp := activeResponse{
		paramsResponse: paramsResponse{
			Styles:  state.Refs,
			Params:  state.Params,
			Applied: state.Report.Applied,
		},
		Version:  state.Version,
		LoadedAt: state.LoadedAt,
	}
	for _, u := range state.Report.Unknown {
		resp.Unknown = append(resp.Unknown, models.UnknownKey{Key: u.Key, Line: u.Line})
	}

	if format == formatYAML {
		utils.WriteYAML(w, resp, http.StatusOK)
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}
