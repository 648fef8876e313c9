// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/models"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// routeEntry is one walked route pattern split into segments, with the
// methods registered for it.
type routeEntry struct {
	segments []patternSegment
	methods  map[string]struct{}
}

type patternSegment struct {
	literal  string
	param    bool
	match    *regexp.Regexp
	catchAll bool
}

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed]. It
// answers 405 with an Allow header listing the methods router serves for the
// request path, parameterised and mounted routes included.
//
// The route table is collected with [chi.Walk] on the first call, so every
// route must be registered before the router starts serving.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	table := sync.OnceValue(func() []routeEntry { return walkRoutes(router) })

	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(table(), r.URL.Path)

		if len(allowed) == 0 {
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	}
}

// walkRoutes groups the router's registered methods by full route pattern.
func walkRoutes(router chi.Routes) []routeEntry {
	byPattern := make(map[string]map[string]struct{})
	var order []string

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		route = trimSlash(route)
		methods, ok := byPattern[route]
		if !ok {
			methods = make(map[string]struct{})
			byPattern[route] = methods
			order = append(order, route)
		}
		methods[method] = struct{}{}
		return nil
	})

	entries := make([]routeEntry, 0, len(order))
	for _, route := range order {
		entries = append(entries, routeEntry{
			segments: splitPattern(route),
			methods:  byPattern[route],
		})
	}
	return entries
}

// allowedMethods returns, in routeMethods order, every method served by a
// route whose pattern matches path.
func allowedMethods(entries []routeEntry, path string) []string {
	path = trimSlash(path)
	union := make(map[string]struct{})
	for _, e := range entries {
		if !e.matches(path) {
			continue
		}
		for m := range e.methods {
			union[m] = struct{}{}
		}
	}

	var allowed []string
	for _, m := range routeMethods {
		if _, ok := union[m]; ok {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

func (e routeEntry) matches(path string) bool {
	parts := strings.Split(path, "/")
	for i, seg := range e.segments {
		if seg.catchAll {
			return true
		}
		if i >= len(parts) {
			return false
		}
		switch {
		case seg.param:
			if parts[i] == "" || (seg.match != nil && !seg.match.MatchString(parts[i])) {
				return false
			}
		case seg.literal != parts[i]:
			return false
		}
	}
	return len(parts) == len(e.segments)
}

func splitPattern(route string) []patternSegment {
	raw := strings.Split(route, "/")
	segments := make([]patternSegment, 0, len(raw))
	for _, s := range raw {
		switch {
		case s == "*":
			segments = append(segments, patternSegment{catchAll: true})
		case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
			seg := patternSegment{param: true}
			if _, expr, ok := strings.Cut(s[1:len(s)-1], ":"); ok {
				seg.match, _ = regexp.Compile("^(?:" + expr + ")$")
			}
			segments = append(segments, seg)
		default:
			segments = append(segments, patternSegment{literal: s})
		}
	}
	return segments
}

// trimSlash drops a trailing slash so "/items/{id}/" from a mounted
// subrouter and the request path "/items/7" compare alike.
func trimSlash(p string) string {
	if len(p) > 1 {
		return strings.TrimSuffix(p, "/")
	}
	return p
}
