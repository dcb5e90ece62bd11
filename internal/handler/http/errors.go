// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer. Such requests are answered with the 404 page.
	ErrInvalidID = errors.New("invalid record id")

	// ErrInvalidFlash marks a flash cookie that is unsigned, tampered with or
	// not decodable.
	ErrInvalidFlash = errors.New("invalid flash cookie")

	// ErrInvalidForm is returned when the request body cannot be parsed as
	// form data.
	ErrInvalidForm = errors.New("invalid form data")
)
