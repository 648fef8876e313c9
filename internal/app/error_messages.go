// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used across the
// style server handlers and the stylectl tool.
//
// The Msg* constants describe the outcome of an operation in log entries
// and in command output, so the same wording shows up on both sides.
package app

const (
	// MsgInternalServerError is logged when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgErrorListingStyles is logged when the style library cannot be
	// listed.
	MsgErrorListingStyles = "error listing styles"

	// MsgErrorGettingStyle is logged when a stored style cannot be read.
	MsgErrorGettingStyle = "error getting style"

	// MsgErrorSavingStyle is logged when a style cannot be written to the
	// library.
	MsgErrorSavingStyle = "error saving style"

	// MsgErrorDeletingStyle is logged when a style cannot be removed.
	MsgErrorDeletingStyle = "error deleting style"

	// MsgErrorReadingBody is logged when a request body cannot be read.
	MsgErrorReadingBody = "error reading style body"

	// MsgErrorValidatingStyle is logged when validation fails for reasons
	// other than the document itself.
	MsgErrorValidatingStyle = "error validating style"

	// MsgErrorApplyingStyles is logged when a composition cannot be applied.
	MsgErrorApplyingStyles = "error applying styles"

	// MsgStoredStyleInvalid is logged when a library entry no longer parses.
	MsgStoredStyleInvalid = "stored style does not parse"

	// MsgBuiltinStyleInvalid is logged when an embedded style does not
	// parse.
	MsgBuiltinStyleInvalid = "embedded style does not parse"

	// MsgStyleIsValid is printed by stylectl when a document passes all
	// checks.
	MsgStyleIsValid = "style is valid"

	// MsgStyleIsInvalid is printed by stylectl when a document fails
	// validation.
	MsgStyleIsInvalid = "style is invalid"

	// MsgStyleCreated and MsgStyleReplaced report the outcome of a push.
	MsgStyleCreated  = "style created"
	MsgStyleReplaced = "style replaced"

	// MsgStyleDeleted reports a removed library entry.
	MsgStyleDeleted = "style deleted"

	// MsgCopiedToClipboard reports that output went to the clipboard.
	MsgCopiedToClipboard = "copied to clipboard"
)
