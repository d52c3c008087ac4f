package service

import (
	"context"

	"doc-agent-be/internal/constant"
	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/pkg/logger"
	"doc-agent-be/internal/session"
	"doc-agent-be/pkg/events"
	"doc-agent-be/pkg/letta"
	"doc-agent-be/pkg/nats"
	"doc-agent-be/pkg/store"
)

// IDocumentService exposes the known-document view and the idempotent delete.
type IDocumentService interface {
	List(ctx context.Context, refresh bool) ([]dto.DocumentResponse, error)
	Delete(ctx context.Context, documentID string) error
	RefreshCache(ctx context.Context) ([]store.Document, error)
}

type documentService struct {
	api     letta.API
	session *session.Context
	hub     Notifier
	natsPub *nats.Publisher
	logger  logger.ILogger
}

func NewDocumentService(
	api letta.API,
	sess *session.Context,
	hub Notifier,
	natsPub *nats.Publisher,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		api:     api,
		session: sess,
		hub:     hub,
		natsPub: natsPub,
		logger:  log,
	}
}

// RefreshCache re-fetches the source list from the backend, replaces the
// cached copy and notifies the presentation layer.
func (ds *documentService) RefreshCache(ctx context.Context) ([]store.Document, error) {
	sources, err := ds.api.ListSources(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]store.Document, 0, len(sources))
	for _, s := range sources {
		docs = append(docs, store.Document{ID: s.ID, Name: s.Name, Description: s.Description})
	}

	ds.session.ReplaceDocuments(docs)
	ds.hub.Broadcast(constant.WsEventDocumentsChanged, docs)
	return docs, nil
}

func (ds *documentService) List(ctx context.Context, refresh bool) ([]dto.DocumentResponse, error) {
	docs := ds.session.Documents()
	if refresh || len(docs) == 0 {
		fresh, err := ds.RefreshCache(ctx)
		if err != nil {
			return nil, err
		}
		docs = fresh
	}

	result := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, dto.DocumentResponse{Id: d.ID, Name: d.Name, Description: d.Description})
	}
	return result, nil
}

// Delete removes a document. The end state "resource absent" is what the
// caller asked for, so a backend not-found is normalized to success.
func (ds *documentService) Delete(ctx context.Context, documentID string) error {
	if err := ds.api.DeleteSource(ctx, documentID); err != nil {
		if !letta.IsNotFound(err) {
			return err
		}
		ds.logger.Info("Document", "Delete of absent document treated as success", map[string]interface{}{
			"document_id": documentID,
		})
	}

	if ds.natsPub != nil {
		if err := ds.natsPub.Publish(ctx, events.NewDocumentDeleted(documentID)); err != nil {
			ds.logger.Warn("Document", "Failed to publish delete event", map[string]interface{}{"error": err.Error()})
		}
	}

	if _, err := ds.RefreshCache(ctx); err != nil {
		ds.logger.Warn("Document", "Cache refresh after delete failed", map[string]interface{}{"error": err.Error()})
	}
	return nil
}
