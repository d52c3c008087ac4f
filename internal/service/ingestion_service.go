package service

import (
	"context"
	"time"

	"doc-agent-be/internal/constant"
	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/pkg/logger"
	"doc-agent-be/internal/repository/memory"
	"doc-agent-be/internal/session"
	"doc-agent-be/pkg/events"
	"doc-agent-be/pkg/letta"
	"doc-agent-be/pkg/nats"
	"doc-agent-be/pkg/store"
	"doc-agent-be/pkg/utils"

	"github.com/google/uuid"
)

// IIngestionService drives each dropped file through
// create -> transfer -> attach with observable progress transitions.
type IIngestionService interface {
	StartUpload(name string, content []byte) *dto.UploadTaskResponse
	Tasks() []dto.UploadTaskResponse
}

type ingestionService struct {
	api       letta.API
	session   *session.Context
	tasks     *memory.TaskRepository
	publisher IPublisherService
	hub       Notifier
	natsPub   *nats.Publisher
	logger    logger.ILogger
}

func NewIngestionService(
	api letta.API,
	sess *session.Context,
	tasks *memory.TaskRepository,
	publisher IPublisherService,
	hub Notifier,
	natsPub *nats.Publisher,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		api:       api,
		session:   sess,
		tasks:     tasks,
		publisher: publisher,
		hub:       hub,
		natsPub:   natsPub,
		logger:    log,
	}
}

// StartUpload registers a fresh task and runs the ingestion steps in the
// background. Files dropped together become independent tasks; within one
// task the steps are strictly ordered. The background context is deliberate:
// a user navigating away abandons the request, not the ingestion.
func (is *ingestionService) StartUpload(name string, content []byte) *dto.UploadTaskResponse {
	task := &store.UploadTask{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    store.TaskStatusUploading,
		Progress:  0,
		CreatedAt: time.Now(),
	}
	is.tasks.Save(task)

	// Snapshot the response first: after the goroutine starts, the task
	// pointer belongs to it alone. Readers see repository copies.
	res := toTaskResponse(task)
	is.hub.Broadcast(constant.WsEventTaskProgress, res)

	go is.processUpload(context.Background(), task, name, content)

	return &res
}

// processUpload executes steps create -> transfer -> attach. Attachment is
// best-effort: ingestion already succeeded, the reconciler retries attaches.
func (is *ingestionService) processUpload(ctx context.Context, task *store.UploadTask, name string, content []byte) {
	// Names must be unique in the backend namespace; repeated uploads of the
	// same filename must not collide.
	docName := utils.UniqueDocumentName(name)

	source, err := is.api.CreateSource(ctx, letta.CreateSourceRequest{
		Name:            docName,
		Description:     constant.DocumentDescription,
		EmbeddingConfig: defaultEmbeddingConfig(),
	})
	if err != nil {
		// Nothing was transferred, so there is no partial state to clean up.
		is.fail(task, "create document: "+err.Error())
		return
	}

	is.transition(task, store.TaskStatusProcessing, 50)

	if err := is.api.UploadFileToSource(ctx, source.ID, name, content); err != nil {
		// The document now exists without content. Accepted inconsistency:
		// surfaced as a failed task, not auto-deleted or auto-retried.
		is.fail(task, "transfer content: "+err.Error())
		return
	}

	is.transition(task, store.TaskStatusCompleted, 100)

	if agent := is.session.Agent(); agent != nil {
		if err := is.api.AttachSourceToAgent(ctx, agent.ID, source.ID); err != nil {
			is.logger.Warn("Ingestion", "Attach failed, reconciler will retry", map[string]interface{}{
				"document_id": source.ID,
				"error":       err.Error(),
			})
		}
	}

	if err := is.publisher.PublishDocumentIngested(source.ID, docName); err != nil {
		is.logger.Warn("Ingestion", "Failed to publish ingested event", map[string]interface{}{"error": err.Error()})
	}

	if is.natsPub != nil {
		if err := is.natsPub.Publish(ctx, events.NewDocumentIngested(source.ID, docName)); err != nil {
			is.logger.Warn("Ingestion", "Failed to publish NATS event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (is *ingestionService) Tasks() []dto.UploadTaskResponse {
	tasks := is.tasks.All()
	result := make([]dto.UploadTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, toTaskResponse(t))
	}
	return result
}

func (is *ingestionService) transition(task *store.UploadTask, status string, progress int) {
	task.Status = status
	task.Progress = progress
	is.tasks.Save(task)
	is.hub.Broadcast(constant.WsEventTaskProgress, toTaskResponse(task))
}

func (is *ingestionService) fail(task *store.UploadTask, detail string) {
	task.Status = store.TaskStatusFailed
	task.Error = detail
	is.tasks.Save(task)
	is.hub.Broadcast(constant.WsEventTaskProgress, toTaskResponse(task))
	is.logger.Error("Ingestion", "Upload failed", map[string]interface{}{
		"task_id": task.ID,
		"name":    task.Name,
		"error":   detail,
	})
}

func toTaskResponse(task *store.UploadTask) dto.UploadTaskResponse {
	return dto.UploadTaskResponse{
		Id:        task.ID,
		Name:      task.Name,
		Status:    task.Status,
		Progress:  task.Progress,
		Error:     task.Error,
		CreatedAt: task.CreatedAt,
	}
}
