// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the flat error body shared by the JSON API
type ErrorResponse struct {
	Error string `json:"error"`
}

// Response acknowledges an operation that returns no data
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FailureResponse is the error body of machine to machine endpoints
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

func WriteFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, FailureResponse{Success: false, Error: message})
}
