// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the stylectl command line application.
//
// Local subcommands (check, show, fmt, apply, export, copy) work on style
// files and embedded styles through the style service. Remote subcommands
// (list, pull, push, delete) talk to a style server through the adapter.
package client
