// Package handler provides HTTP request handlers for the featured-content API.
package handler

import "github.com/vyrodovalexey/featured-content/internal/model"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status string `json:"status"`
	Items  int    `json:"items"`
}

// Broadcaster receives store mutations after they succeed.
type Broadcaster interface {
	Broadcast(event model.ContentEvent)
}

type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast(model.ContentEvent) {}
