package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-plot-style/internal/app"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/style/builtin"
	"github.com/MKhiriev/go-plot-style/internal/utils"
)

func (h *Handler) listBuiltinStyles(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, builtin.Names(), http.StatusOK)
}

// getBuiltinStyle serves the embedded file verbatim, comments included.
func (h *Handler) getBuiltinStyle(w http.ResponseWriter, r *http.Request) {
	format, err := responseFormat(r, formatRC)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	name := chi.URLParam(r, "name")
	body, err := builtin.Bytes(name)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if format == formatRC {
		utils.WriteRC(w, body, http.StatusOK)
		return
	}

	doc, err := style.ParseBytes(body, style.WithSource("builtin:"+name))
	if err != nil {
		writeError(w, r, err, app.MsgBuiltinStyleInvalid)
		return
	}
	if format == formatYAML {
		utils.WriteYAML(w, doc.Map(), http.StatusOK)
		return
	}
	utils.WriteJSON(w, doc.Map(), http.StatusOK)
}
