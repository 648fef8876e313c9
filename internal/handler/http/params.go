package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-plot-style/internal/app"
	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/models"
)

var errRefNotAllowed = errors.New("only builtin: and db: style refs are served")

type paramsResponse struct {
	Styles  []string            `json:"styles" yaml:"styles"`
	Params  *rcparams.Params    `json:"params" yaml:"params"`
	Applied []string            `json:"applied" yaml:"applied"`
	Unknown []models.UnknownKey `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

// getParams composes the ?style= refs in order and returns the resulting
// renderer parameters. File refs are refused.
func (h *Handler) getParams(w http.ResponseWriter, r *http.Request) {
	format, err := responseFormat(r, formatJSON)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if format == formatRC {
		writeError(w, r, errUnsupportedFormat, "")
		return
	}

	refs := r.URL.Query()["style"]
	for _, ref := range refs {
		if !strings.HasPrefix(ref, "builtin:") && !strings.HasPrefix(ref, "db:") {
			writeError(w, r, errRefNotAllowed, "")
			return
		}
	}

	params, report, err := h.services.StyleService.Apply(r.Context(), refs...)
	if err != nil {
		writeError(w, r, err, app.MsgErrorApplyingStyles)
		return
	}

	resp := paramsResponse{
		Styles:  refs,
		Params:  params,
		Applied: report.Applied,
	}
	for _, u := range report.Unknown {
		resp.Unknown = append(resp.Unknown, models.UnknownKey{Key: u.Key, Line: u.Line})
	}

	if format == formatYAML {
		utils.WriteYAML(w, resp, http.StatusOK)
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}
