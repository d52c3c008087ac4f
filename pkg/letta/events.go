package letta

import "encoding/json"

// EventKind tags one unit of backend output for a turn.
type EventKind string

const (
	KindReasoning     EventKind = "reasoning"
	KindToolCall      EventKind = "tool_call"
	KindToolReturn    EventKind = "tool_return"
	KindAssistantText EventKind = "assistant_text"
)

// ToolSendMessage is the canonical answer-delivery tool name.
const ToolSendMessage = "send_message"

// EventRecord is one tagged unit of a turn's event stream. Ephemeral: it
// exists only while one response is normalized, it is never persisted.
type EventRecord struct {
	Kind EventKind

	// Text carries the reasoning text, the tool return text or the final
	// assistant text depending on Kind.
	Text string

	// Tool call payload (Kind == KindToolCall).
	ToolName string
	ToolArgs string // raw JSON argument payload

	// Tool return status (Kind == KindToolReturn): "success" | "error".
	Status string
}

// rawEvent mirrors the backend's per-record JSON. Each record carries exactly
// one of the variant fields.
type rawEvent struct {
	InternalMonologue *string `json:"internal_monologue"`
	AssistantMessage  *string `json:"assistant_message"`
	FunctionCall      *struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function_call"`
	FunctionReturn *string `json:"function_return"`
	Status         string  `json:"status"`
}

// UnmarshalJSON maps the backend's variant fields onto the closed Kind set.
func (e *EventRecord) UnmarshalJSON(data []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.InternalMonologue != nil:
		e.Kind = KindReasoning
		e.Text = *raw.InternalMonologue
	case raw.FunctionCall != nil:
		e.Kind = KindToolCall
		e.ToolName = raw.FunctionCall.Name
		e.ToolArgs = raw.FunctionCall.Arguments
	case raw.FunctionReturn != nil:
		e.Kind = KindToolReturn
		e.Text = *raw.FunctionReturn
		e.Status = raw.Status
	case raw.AssistantMessage != nil:
		e.Kind = KindAssistantText
		e.Text = *raw.AssistantMessage
	default:
		// Unknown record shapes are kept but untagged; the normalizer
		// ignores them.
		e.Kind = ""
	}

	return nil
}

// SendMessageArgs is the structured argument payload of a send_message call.
type SendMessageArgs struct {
	Message string `json:"message"`
}
