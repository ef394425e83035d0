package dto

import "time"

// ErrorResponse is the payload shape every failed request gets: a title, the
// moment of failure, the HTTP status, the error kind and a per-field (or
// per-cause) detail map.
type ErrorResponse struct {
	Title     string            `json:"title"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Exception string            `json:"exception"`
	Details   map[string]string `json:"details"`
}

// FieldErrors accumulates request-shape failures keyed by field name.
type FieldErrors map[string]string
