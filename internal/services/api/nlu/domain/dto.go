// Package domain holds DTOs for nlu http and service contracts
package domain

import "domovoy/internal/core/extract"

// ParseInput is the request body for parsing one utterance
type ParseInput struct {
	Text string `json:"text" validate:"not_blank" example:"включи свет на кухне"`
}

// ParseResponse is the full parse result
type ParseResponse struct {
	Text        string             `json:"text"`
	Intent      string             `json:"intent"`
	IntentScore float64            `json:"intent_score"`
	Entities    extract.SlotRecord `json:"entities"`
}
