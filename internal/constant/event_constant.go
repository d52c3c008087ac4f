package constant

// Watermill topic names for the in-process event bus.
const (
	TopicDocumentIngested = "DOCUMENT_INGESTED"
)

// ProcessingTriggerMessage is sent to the agent after new documents are
// attached. It is flagged silent: the reply is never normalized or shown,
// the turn only nudges the backend to index the new sources.
const ProcessingTriggerMessage = "[system] New documents were attached to your sources. " +
	"Index them now and reply with a short acknowledgment."

// WebSocket frame types pushed to the presentation layer.
const (
	WsEventTaskProgress     = "task_progress"
	WsEventTurnAppended     = "turn_appended"
	WsEventDocumentsChanged = "documents_changed"
)
