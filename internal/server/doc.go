// Package server wires and runs the style server's long-lived processes.
//
// It owns the HTTP listener lifecycle and runs it next to background
// workers such as the style file watcher, stopping all of them on SIGTERM,
// SIGINT or SIGQUIT with a graceful shutdown of the listener.
package server
