package models

import (
	"time"

	"draw-tool-backend/internal/utils/random"
)

// Draw is a stored, replayable shuffle of a list of entries.
type Draw struct {
	ID           string        `json:"id" example:"7f1c2f0e-8f0a-4b59-9a6e-0d7c3c1d2e4f"`
	Seed         uint64        `json:"seed,string" example:"12345"`
	Entries      []string      `json:"entries"`
	Order        []string      `json:"order"`
	Winners      []Winner      `json:"winners"`
	WinnersCount int           `json:"winners_count"`
	Draws        int           `json:"draws"` // values consumed from the source
	Trace        []random.Step `json:"trace,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

type Winner struct {
	Entry string `json:"entry"`
	Place int    `json:"place"`
}

// Verification is the result of replaying a stored draw from its seed.
type Verification struct {
	DrawID   string   `json:"draw_id"`
	Valid    bool     `json:"valid"`
	Expected []string `json:"expected"`
	Actual   []string `json:"actual"`
	// Mismatch is the first differing index, or -1.
	Mismatch int `json:"mismatch"`
	// Reason names the first field that failed: order, draws or winners.
	Reason string `json:"reason,omitempty"`
}
