package dto

import (
	"encoding/json"
	"time"
)

type HistoryEntryResponse struct {
	ID        string          `json:"id"`
	RequestID string          `json:"request_id,omitempty"`
	Workflow  string          `json:"workflow"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListHistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
}
