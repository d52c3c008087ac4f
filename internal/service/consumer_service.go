package service

import (
	"context"
	"encoding/json"
	"log"

	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/session"
	"doc-agent-be/pkg/reconcile"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService reacts to DOCUMENT_INGESTED events: refresh the document
// cache, run the attachment reconciler, then fire the silent processing
// trigger so the agent indexes the new sources.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	session     *session.Context
	docService  IDocumentService
	chatService IChatService
	reconciler  *reconcile.Reconciler
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sess *session.Context,
	docService IDocumentService,
	chatService IChatService,
	reconciler *reconcile.Reconciler,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		session:     sess,
		docService:  docService,
		chatService: chatService,
		reconciler:  reconciler,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishDocumentIngestedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Reconciling attachments after ingestion of %s", payload.DocumentId)

	// The new document must be in the known set before the reconcile pass.
	if _, err := cs.docService.RefreshCache(ctx); err != nil {
		log.Printf("[ERROR] Failed to refresh document cache: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	agent := cs.session.Agent()
	if agent == nil {
		// Bootstrap has not completed; the next ingestion event retries.
		log.Printf("[WARN] No active agent yet, skipping reconcile")
		msg.Ack()
		return
	}

	attached, err := cs.reconciler.Reconcile(ctx, agent.ID, cs.session.Documents())
	if err != nil {
		log.Printf("[ERROR] Reconcile pass failed: %v", err)
		msg.Nack()
		return
	}

	if attached > 0 {
		if err := cs.chatService.SendProcessingTrigger(ctx); err != nil {
			// Best effort: indexing also happens lazily on the next real turn.
			log.Printf("[WARN] Processing trigger failed: %v", err)
		}
	}

	log.Printf("[SUCCESS] Reconcile pass done, %d attachment(s) issued", attached)
	msg.Ack()
}
