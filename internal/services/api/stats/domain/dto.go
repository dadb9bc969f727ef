// Package domain holds DTOs for stats http and service contracts
package domain

// IntentCount is the parse volume of one intent
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int64  `json:"count"`
}

// SlotFill is the fill count of one slot across parses
type SlotFill struct {
	Slot   string `json:"slot"`
	Filled int64  `json:"filled"`
}

// SlotStatsResp summarizes slot extraction over a trailing window
type SlotStatsResp struct {
	Days    int           `json:"days"`
	Total   int64         `json:"total"`
	Intents []IntentCount `json:"intents"`
	Slots   []SlotFill    `json:"slots"`
}
