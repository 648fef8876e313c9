package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plot-style/internal/style"
)

var latexKeys = []string{
	"axes.prop_cycle",
	"grid.color",
	"lines.markersize",
	"lines.markeredgewidth",
	"lines.linewidth",
	"legend.numpoints",
	"legend.fontsize",
	"legend.frameon",
	"font.size",
	"font.family",
	"font.serif",
	"xtick.major.pad",
	"axes.grid",
	"axes.formatter.limits",
	"axes.formatter.use_mathtext",
	"legend.loc",
	"legend.fancybox",
}

func TestNames(t *testing.T) {
	assert.Contains(t, Names(), Latex)
}

// TestLoad_Latex verifies the latex document carries exactly the
// recognized keys.
func TestLoad_Latex(t *testing.T) {
	doc, err := Load(Latex, style.WithDuplicates(style.DuplicatesReject))
	require.NoError(t, err)

	assert.Equal(t, latexKeys, doc.Keys())
	assert.Equal(t, "cycler('color', ['k', 'b', 'g', 'r', 'c', 'm', 'y'])", doc.Get("axes.prop_cycle"))
	assert.Equal(t, "False", doc.Get("legend.frameon"))
	assert.Equal(t, "-4, 4", doc.Get("axes.formatter.limits"))
	assert.Equal(t, "cmr10", doc.Get("font.serif"))
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("seaborn")
	assert.ErrorIs(t, err, ErrUnknownStyle)

	_, err = Bytes("../builtin")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

// TestBytes_RoundTrip verifies the embedded file survives a
// parse/serialize cycle.
func TestBytes_RoundTrip(t *testing.T) {
	b, err := Bytes(Latex)
	require.NoError(t, err)

	doc, err := style.ParseBytes(b)
	require.NoError(t, err)

	again, err := style.ParseBytes(style.Marshal(doc))
	require.NoError(t, err)
	assert.True(t, doc.Equal(again))
}
