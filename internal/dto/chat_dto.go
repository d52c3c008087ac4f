package dto

import (
	"time"

	"doc-agent-be/pkg/markup"
)

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`

	// Silent marks an internally triggered processing turn: the reply is not
	// normalized and no conversation turn is produced.
	Silent bool `json:"silent,omitempty"`
}

type TurnResponse struct {
	Id        string       `json:"id"`
	Role      string       `json:"role"`
	Content   string       `json:"content"`
	Rendered  *markup.Root `json:"rendered,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type SendMessageResponse struct {
	Sent  *TurnResponse `json:"sent,omitempty"`
	Reply *TurnResponse `json:"reply,omitempty"`

	// Acknowledged is set for silent processing triggers instead of turns.
	Acknowledged bool `json:"acknowledged,omitempty"`
}

type AgentResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
