package service

import (
	"context"

	"doc-agent-be/internal/constant"
	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/pkg/logger"
	"doc-agent-be/internal/session"
	"doc-agent-be/pkg/events"
	"doc-agent-be/pkg/letta"
	"doc-agent-be/pkg/markup"
	"doc-agent-be/pkg/nats"
	"doc-agent-be/pkg/normalizer"
	"doc-agent-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

// IChatService submits user messages to the active agent and maintains the
// conversation log.
type IChatService interface {
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	SendProcessingTrigger(ctx context.Context) error
	History() []dto.TurnResponse
}

type chatService struct {
	api          letta.API
	session      *session.Context
	conversation *store.Conversation
	hub          Notifier
	natsPub      *nats.Publisher
	logger       logger.ILogger
}

func NewChatService(
	api letta.API,
	sess *session.Context,
	conversation *store.Conversation,
	hub Notifier,
	natsPub *nats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		api:          api,
		session:      sess,
		conversation: conversation,
		hub:          hub,
		natsPub:      natsPub,
		logger:       log,
	}
}

// SendMessage appends the user turn, submits it, and appends one normalized
// assistant turn. A failed submission still yields a single fallback
// assistant turn; the UI never sees an unhandled fault.
func (cs *chatService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	agent := cs.session.Agent()
	if agent == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "agent is not ready yet")
	}

	if request.Silent {
		return cs.sendSilent(ctx, agent.ID, request.Message)
	}

	userTurn := cs.appendTurn(ctx, constant.ChatRoleUser, request.Message)

	records, err := cs.api.SendMessage(ctx, agent.ID, letta.MessageRequest{
		Messages: []letta.Message{{Role: constant.ChatRoleUser, Content: request.Message}},
	})

	var answer string
	if err != nil {
		cs.logger.Error("Chat", "Message submission failed", map[string]interface{}{"error": err.Error()})
		answer = normalizer.FallbackAnswer
	} else {
		answer = normalizer.Normalize(records)
	}

	replyTurn := cs.appendTurn(ctx, constant.ChatRoleAssistant, answer)

	return &dto.SendMessageResponse{
		Sent:  toTurnResponse(userTurn),
		Reply: toTurnResponse(replyTurn),
	}, nil
}

// sendSilent handles internally triggered processing turns: the event stream
// is discarded, no turn is appended, and only an acknowledgment is returned.
func (cs *chatService) sendSilent(ctx context.Context, agentID, content string) (*dto.SendMessageResponse, error) {
	if _, err := cs.api.SendMessage(ctx, agentID, letta.MessageRequest{
		Messages: []letta.Message{{Role: constant.ChatRoleUser, Content: content}},
	}); err != nil {
		return nil, err
	}
	return &dto.SendMessageResponse{Acknowledged: true}, nil
}

// SendProcessingTrigger nudges the agent to index newly attached documents.
func (cs *chatService) SendProcessingTrigger(ctx context.Context) error {
	agent := cs.session.Agent()
	if agent == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "agent is not ready yet")
	}
	_, err := cs.sendSilent(ctx, agent.ID, constant.ProcessingTriggerMessage)
	return err
}

func (cs *chatService) History() []dto.TurnResponse {
	turns := cs.conversation.History()
	result := make([]dto.TurnResponse, 0, len(turns))
	for _, t := range turns {
		result = append(result, *toTurnResponse(t))
	}
	return result
}

func (cs *chatService) appendTurn(ctx context.Context, role, content string) store.ConversationTurn {
	turn := cs.conversation.Append(role, content)
	cs.hub.Broadcast(constant.WsEventTurnAppended, toTurnResponse(turn))

	if cs.natsPub != nil {
		if err := cs.natsPub.Publish(ctx, events.NewChatTurn(turn.ID, role)); err != nil {
			cs.logger.Warn("Chat", "Failed to publish turn event", map[string]interface{}{"error": err.Error()})
		}
	}
	return turn
}

// toTurnResponse attaches the structural rendering for assistant turns; user
// text is kept verbatim.
func toTurnResponse(turn store.ConversationTurn) *dto.TurnResponse {
	res := &dto.TurnResponse{
		Id:        turn.ID,
		Role:      turn.Role,
		Content:   turn.Content,
		CreatedAt: turn.CreatedAt,
	}
	if turn.Role == constant.ChatRoleAssistant {
		rendered := markup.Render(turn.Content)
		res.Rendered = &rendered
	}
	return res
}
