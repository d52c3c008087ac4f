package service

import (
	"encoding/json"

	"doc-agent-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService puts ingestion events on the in-process bus. The
// consumer side reconciles attachments and fires the processing trigger.
type IPublisherService interface {
	PublishDocumentIngested(documentID, name string) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishDocumentIngested(documentID, name string) error {
	payload, err := json.Marshal(dto.PublishDocumentIngestedMessage{
		DocumentId: documentID,
		Name:       name,
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}
