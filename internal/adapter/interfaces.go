// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter wraps outbound HTTP calls made by the server.
//
// The only abstraction is [ImageProber], which checks whether a remote image
// URL answers a GET. The service layer decides what a probe outcome means;
// this package only reports what happened on the wire.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrImageUnreachable]).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_prober_mock.go -package=mock

// ImageProber issues a GET against an image URL.
type ImageProber interface {
	// Probe requests rawURL and returns the response status. A non-2xx status
	// is not an error; only a missing, malformed or unreachable URL is.
	Probe(ctx context.Context, rawURL string) (ProbeResult, error)
}

// ProbeResult describes a completed probe.
type ProbeResult struct {
	// URL is the normalised URL that was requested.
	URL string
	// StatusCode is the final status after redirects.
	StatusCode  int
	ContentType string
}
