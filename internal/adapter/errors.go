// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors, mapped from HTTP status codes and S3 error codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("media not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrIntegrityMismatch is returned when a downloaded blob does not
	// match the transport hash sent by the server.
	ErrIntegrityMismatch = errors.New("media integrity check failed")

	// ErrInvalidAddress is returned for an empty or unparsable base URL.
	ErrInvalidAddress = errors.New("invalid adapter address")

	// ErrMissingBucket is returned when the S3 store has no bucket name.
	ErrMissingBucket = errors.New("s3 bucket is not configured")

	// ErrMissingMediaID is returned when a media reference carries neither
	// an ID nor a URL.
	ErrMissingMediaID = errors.New("media reference has no id")
)
