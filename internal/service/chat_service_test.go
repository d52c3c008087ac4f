package service

import (
	"context"
	"errors"
	"testing"

	"doc-agent-be/internal/constant"
	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/session"
	"doc-agent-be/pkg/letta"
	"doc-agent-be/pkg/normalizer"
	"doc-agent-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

func newChatFixture(api *fakeAPI) (*chatService, *session.Context, *store.Conversation, *fakeNotifier) {
	sess := session.NewContext()
	conversation := store.NewConversation()
	hub := &fakeNotifier{}
	svc := &chatService{
		api:          api,
		session:      sess,
		conversation: conversation,
		hub:          hub,
		logger:       nopLogger{},
	}
	return svc, sess, conversation, hub
}

func TestSendMessageAppendsBothTurns(t *testing.T) {
	api := &fakeAPI{sendRecords: []letta.EventRecord{
		{Kind: letta.KindAssistantText, Text: "the answer"},
	}}
	svc, sess, conversation, _ := newChatFixture(api)
	sess.SetAgent(&store.Agent{ID: "agent-1"})

	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "what is X?"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if res.Sent == nil || res.Sent.Role != constant.ChatRoleUser {
		t.Errorf("sent turn = %+v, want user turn", res.Sent)
	}
	if res.Reply == nil || res.Reply.Role != constant.ChatRoleAssistant {
		t.Fatalf("reply turn = %+v, want assistant turn", res.Reply)
	}
	if res.Reply.Content != "the answer" {
		t.Errorf("reply = %q", res.Reply.Content)
	}
	if res.Reply.Rendered == nil {
		t.Error("assistant turn must carry a rendering")
	}
	if res.Sent.Rendered != nil {
		t.Error("user turn must not carry a rendering")
	}
	if conversation.Len() != 2 {
		t.Errorf("history length = %d, want 2", conversation.Len())
	}
}

func TestSendMessageFallbackOnBackendError(t *testing.T) {
	api := &fakeAPI{sendErr: errors.New("backend unreachable")}
	svc, sess, conversation, _ := newChatFixture(api)
	sess.SetAgent(&store.Agent{ID: "agent-1"})

	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("SendMessage must not surface the backend error, got %v", err)
	}

	if res.Reply.Content != normalizer.FallbackAnswer {
		t.Errorf("reply = %q, want fallback", res.Reply.Content)
	}
	// The user turn is kept; the failed exchange is still part of history.
	if conversation.Len() != 2 {
		t.Errorf("history length = %d, want 2", conversation.Len())
	}
}

func TestSendMessageWithoutAgent(t *testing.T) {
	svc, _, _, _ := newChatFixture(&fakeAPI{})

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "hi"})
	if err == nil {
		t.Fatal("expected error before bootstrap")
	}
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusServiceUnavailable {
		t.Errorf("err = %v, want 503", err)
	}
}

func TestSendMessageSilent(t *testing.T) {
	api := &fakeAPI{sendRecords: []letta.EventRecord{
		{Kind: letta.KindAssistantText, Text: "acknowledged internally"},
	}}
	svc, sess, conversation, hub := newChatFixture(api)
	sess.SetAgent(&store.Agent{ID: "agent-1"})

	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "[system] reindex", Silent: true})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if !res.Acknowledged {
		t.Error("silent turn must acknowledge")
	}
	if res.Sent != nil || res.Reply != nil {
		t.Errorf("silent turn must not produce turns, got %+v", res)
	}
	if conversation.Len() != 0 {
		t.Errorf("history length = %d, want 0", conversation.Len())
	}
	if len(hub.calls) != 0 {
		t.Errorf("broadcasts = %d, want 0", len(hub.calls))
	}
}

func TestSendProcessingTrigger(t *testing.T) {
	api := &fakeAPI{}
	svc, sess, conversation, _ := newChatFixture(api)
	sess.SetAgent(&store.Agent{ID: "agent-1"})

	if err := svc.SendProcessingTrigger(context.Background()); err != nil {
		t.Fatalf("SendProcessingTrigger: %v", err)
	}

	if len(api.sentMessages) != 1 {
		t.Fatalf("sent = %d, want 1", len(api.sentMessages))
	}
	if api.sentMessages[0].Messages[0].Content != constant.ProcessingTriggerMessage {
		t.Errorf("content = %q, want processing trigger", api.sentMessages[0].Messages[0].Content)
	}
	if conversation.Len() != 0 {
		t.Error("trigger must not appear in history")
	}
}

func TestHistoryRendersAssistantTurnsOnly(t *testing.T) {
	svc, _, conversation, _ := newChatFixture(&fakeAPI{})

	conversation.Append(constant.ChatRoleUser, "question")
	conversation.Append(constant.ChatRoleAssistant, "**bold** answer")

	history := svc.History()
	if len(history) != 2 {
		t.Fatalf("history = %d, want 2", len(history))
	}
	if history[0].Rendered != nil {
		t.Error("user turn must not be rendered")
	}
	if history[1].Rendered == nil {
		t.Error("assistant turn must be rendered")
	}
}
