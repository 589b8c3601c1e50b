// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Image references a picture hosted by the image store.
// It is opaque to the rest of the application and never mutated after the
// upload that produced it.
type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
	Folder   string `json:"folder,omitempty"`
}

// IsZero reports whether the reference points to nothing.
func (i Image) IsZero() bool {
	return i.PublicID == "" && i.URL == ""
}

// UploadFile is an image received from a client, fully buffered in memory.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IsImage reports whether the declared content type is an image type.
func (f UploadFile) IsImage() bool {
	return strings.HasPrefix(f.ContentType, "image")
}
