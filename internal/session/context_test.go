package session

import (
	"testing"

	"doc-agent-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestAgentNilBeforeBootstrap(t *testing.T) {
	c := NewContext()
	assert.Nil(t, c.Agent())
}

func TestAgentReturnsCopy(t *testing.T) {
	c := NewContext()
	c.SetAgent(&store.Agent{ID: "agent-1", Name: "document-assistant"})

	got := c.Agent()
	assert.Equal(t, "agent-1", got.ID)

	got.Name = "mutated"
	assert.Equal(t, "document-assistant", c.Agent().Name)
}

func TestReplaceDocumentsIsWholesale(t *testing.T) {
	c := NewContext()
	c.ReplaceDocuments([]store.Document{{ID: "a"}, {ID: "b"}})
	assert.Len(t, c.Documents(), 2)

	// A shrink must not merge with the previous snapshot.
	c.ReplaceDocuments([]store.Document{{ID: "c"}})
	docs := c.Documents()
	assert.Len(t, docs, 1)
	assert.Equal(t, "c", docs[0].ID)
}

func TestDocumentsSnapshotIsolated(t *testing.T) {
	c := NewContext()
	src := []store.Document{{ID: "a", Name: "a.pdf"}}
	c.ReplaceDocuments(src)

	// Mutating either the input slice or a snapshot must not leak into the cache.
	src[0].Name = "changed.pdf"
	snap := c.Documents()
	snap[0].Name = "also-changed.pdf"

	assert.Equal(t, "a.pdf", c.Documents()[0].Name)
}
