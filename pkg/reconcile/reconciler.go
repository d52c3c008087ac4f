package reconcile

import (
	"context"

	"doc-agent-be/internal/pkg/logger"
	"doc-agent-be/pkg/letta"
	"doc-agent-be/pkg/store"
)

// Reconciler guarantees the active agent's attached-source set is a superset
// of all known documents. The pass is declarative and naturally idempotent:
// running it twice with no intervening changes issues zero attach calls.
type Reconciler struct {
	api    letta.API
	logger logger.ILogger
}

func New(api letta.API, log logger.ILogger) *Reconciler {
	return &Reconciler{
		api:    api,
		logger: log,
	}
}

// Reconcile attaches every document not yet attached to the agent and
// returns the number of attach calls that succeeded. A per-document failure
// is logged and skipped; one flaky attach must not block the others. Only a
// failure to read the attached set aborts the pass.
func (r *Reconciler) Reconcile(ctx context.Context, agentID string, documents []store.Document) (int, error) {
	attachedSources, err := r.api.ListAgentSources(ctx, agentID)
	if err != nil {
		return 0, err
	}

	attached := make(map[string]struct{}, len(attachedSources))
	for _, s := range attachedSources {
		attached[s.ID] = struct{}{}
	}

	count := 0
	for _, doc := range documents {
		if _, ok := attached[doc.ID]; ok {
			continue
		}
		if err := r.api.AttachSourceToAgent(ctx, agentID, doc.ID); err != nil {
			r.logger.Warn("Reconciler", "Attach failed, skipping document", map[string]interface{}{
				"document_id": doc.ID,
				"name":        doc.Name,
				"error":       err.Error(),
			})
			continue
		}
		count++
	}

	return count, nil
}
