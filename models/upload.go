// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFile describes a stored upload.
type UploadedFile struct {
	// Filename is the generated storage name: a UUID followed by the
	// original extension.
	Filename string `json:"filename"`
	// URL is the public path the file is served from.
	URL string `json:"url"`
}
