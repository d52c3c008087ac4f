package store

import (
	"sync"
	"testing"
)

func TestConversationAppendOrder(t *testing.T) {
	c := NewConversation()

	first := c.Append("user", "question")
	second := c.Append("assistant", "answer")

	if first.ID == "" || second.ID == "" {
		t.Error("turns must get ids")
	}
	if first.ID == second.ID {
		t.Error("turn ids must be unique")
	}

	history := c.History()
	if len(history) != 2 {
		t.Fatalf("history = %d, want 2", len(history))
	}
	if history[0].Content != "question" || history[1].Content != "answer" {
		t.Errorf("order wrong: %+v", history)
	}
}

func TestConversationHistoryIsSnapshot(t *testing.T) {
	c := NewConversation()
	c.Append("user", "original")

	history := c.History()
	history[0].Content = "mutated"

	if c.History()[0].Content != "original" {
		t.Error("mutating a snapshot must not affect the log")
	}
}

func TestConversationConcurrentAppend(t *testing.T) {
	c := NewConversation()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Append("user", "x")
		}()
	}
	wg.Wait()

	if c.Len() != 50 {
		t.Errorf("len = %d, want 50", c.Len())
	}
}
