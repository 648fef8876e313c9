// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// HumanizeError turns transport failures into a short hint and passes other
// errors through.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "style server is unreachable: " + err.Error()
	}

	return err.Error()
}

// RenderError renders err in bold for terminal output.
func RenderError(err error) string {
	return errorStyle.Render("error: " + HumanizeError(err))
}
