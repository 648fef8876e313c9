// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-plot-style/models"
)

// RenderBuildInfo renders the stylectl build and, when known, the remote
// server version.
func RenderBuildInfo(info models.AppBuildInfo, server *models.VersionResponse) string {
	var b strings.Builder

	b.WriteString("Application: stylectl\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	if server != nil {
		b.WriteString("\nServer version: ")
		b.WriteString(valueOrNA(server.Version))
		if server.Commit != "" {
			b.WriteString(" (")
			b.WriteString(server.Commit)
			b.WriteString(")")
		}
	}

	return renderPage("BUILD INFO", b.String(), "")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
