// Package http implements the REST transport of the style server.
//
// It exposes the style library (/api/styles), the embedded styles
// (/api/builtin), resolved renderer parameters (/api/params) and build
// metadata (/api/version). Tracing, access logging and response compression
// are applied as middleware before requests reach the service layer.
package http
