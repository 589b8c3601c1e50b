// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-vinted/internal/app"
	"github.com/MKhiriev/go-vinted/models"
)

// unknownErrorBody is written when a response cannot be encoded.
var unknownErrorBody = []byte(`{"message":"` + app.MsgUnknownError + `"}`)

// WriteJSON encodes data and writes it with statusCode and an
// "application/json" content type.
//
// The body is encoded before any header is written, so an encoding failure
// still yields a 500 with the usual {"message"} body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(unknownErrorBody)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}

// WriteMessage writes {"message": message} with the given status code.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
