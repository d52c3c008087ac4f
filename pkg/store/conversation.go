package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Conversation is the in-memory ordered log of turns. Append-only: turns are
// appended in completion order of the operations that produced them and are
// never mutated in place.
type Conversation struct {
	mu    sync.RWMutex
	turns []ConversationTurn
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a turn and returns the stored copy.
func (c *Conversation) Append(role, content string) ConversationTurn {
	turn := ConversationTurn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.turns = append(c.turns, turn)
	c.mu.Unlock()

	return turn
}

// History returns a snapshot of all turns in arrival order.
func (c *Conversation) History() []ConversationTurn {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ConversationTurn, len(c.turns))
	copy(out, c.turns)
	return out
}

func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.turns)
}
