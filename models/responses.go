package models

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`

	// Line is the 1-based line of a parse failure, if any.
	Line int `json:"line,omitempty"`
}

// UnknownKey names a setting the renderer did not recognize.
type UnknownKey struct {
	Key  string `json:"key"`
	Line int    `json:"line,omitempty"`
}

// ValidationReport is the outcome of checking a style document against the
// renderer defaults.
type ValidationReport struct {
	Valid   bool         `json:"valid"`
	Keys    int          `json:"keys"`
	Applied []string     `json:"applied"`
	Unknown []UnknownKey `json:"unknown,omitempty"`
	Errors  []string     `json:"errors,omitempty"`
}

// SaveStyleResponse is returned after a style upload.
type SaveStyleResponse struct {
	Style   StyleSummary `json:"style"`
	Created bool         `json:"created"`
}
