// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MessageResponse is the body of every informational and error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	ID      primitive.ObjectID `json:"id"`
	Token   string             `json:"token"`
	Account Account            `json:"account"`
}
