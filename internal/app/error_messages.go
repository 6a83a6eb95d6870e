// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// beatfluencer API handlers and middleware.
//
// All Msg* constants are the "detail" strings written into HTTP error bodies.
// Clients match on some of them, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body or query
	// cannot be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIncorrectEmailOrPassword is returned by login for an unknown e-mail
	// or a wrong password.
	MsgIncorrectEmailOrPassword = "Incorrect email or password"

	// MsgCouldNotValidateCredentials is returned when the bearer token is
	// missing, malformed, invalid, expired or names an unknown user.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgNotEnoughPermissions is returned when the caller's role is not
	// allowed on the route.
	MsgNotEnoughPermissions = "Not enough permissions"

	// MsgEmailAlreadyRegistered is returned by register for a taken e-mail.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgEmailAlreadyExists is returned by influencer creation for a taken
	// e-mail.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgInfluencerNotFound is returned when an influencer id is unknown.
	MsgInfluencerNotFound = "Influencer not found"

	// MsgFileNotFound is returned when a stored upload does not exist.
	MsgFileNotFound = "File not found"

	// MsgNoFileProvided is returned when an upload lacks the "file" part.
	MsgNoFileProvided = "No file provided"

	// MsgTooManyRequests is returned by the login rate limiter.
	MsgTooManyRequests = "Too many login attempts, try again later"

	// MsgMethodNotAllowed is returned for unsupported HTTP methods.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgServiceUnavailable is returned when the database or file storage
	// cannot be reached.
	MsgServiceUnavailable = "service unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
