package session

import (
	"sync"

	"doc-agent-be/pkg/store"
)

// Context holds the ambient mutable state of one session: the active agent
// and the cached document list. It is an explicit object handed to the
// components that need it, never a module global. The agent is set once
// after bootstrap (before the reconciler's first run) and treated as
// effectively immutable for the rest of the session.
type Context struct {
	mu        sync.RWMutex
	agent     *store.Agent
	documents []store.Document
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) SetAgent(agent *store.Agent) {
	c.mu.Lock()
	c.agent = agent
	c.mu.Unlock()
}

// Agent returns the active agent, or nil before bootstrap completed.
func (c *Context) Agent() *store.Agent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.agent == nil {
		return nil
	}
	copied := *c.agent
	return &copied
}

// ReplaceDocuments swaps the cached document list wholesale. The cache is a
// read copy owned by the backend; it is only ever invalidated by re-fetch.
func (c *Context) ReplaceDocuments(docs []store.Document) {
	copied := make([]store.Document, len(docs))
	copy(copied, docs)

	c.mu.Lock()
	c.documents = copied
	c.mu.Unlock()
}

// Documents returns a snapshot of the cached document list.
func (c *Context) Documents() []store.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]store.Document, len(c.documents))
	copy(out, c.documents)
	return out
}
