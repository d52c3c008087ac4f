package constant

// Chat roles as stored in the conversation log and sent to the agent backend.
// Internally triggered turns also go out as user role, flagged silent.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// Default configuration for the session agent. The backend creates the agent
// once with this shape; afterwards we only read it.
const (
	DefaultAgentName        = "document-assistant"
	DefaultAgentDescription = "Answers questions about the uploaded documents"
	DefaultAgentType        = "memgpt_agent"

	DefaultLLMModel         = "gpt-4"
	DefaultLLMEndpointType  = "openai"
	DefaultLLMContextWindow = 8192

	DefaultEmbeddingModel        = "text-embedding-ada-002"
	DefaultEmbeddingEndpointType = "openai"
	DefaultEmbeddingDim          = 1536
	DefaultEmbeddingChunkSize    = 300
)

// DefaultAgentTools is the fixed toolset the session agent is created with.
// send_message is the canonical answer-delivery tool; the rest give the agent
// access to attached documents.
var DefaultAgentTools = []string{
	"send_message",
	"archival_memory_search",
	"archival_memory_insert",
	"conversation_search",
}

const DefaultAgentSystemPrompt = "You are a document assistant. " +
	"Users upload documents and ask questions about their content. " +
	"Search the attached sources before answering and deliver every answer " +
	"through the send_message tool. If a search fails, answer from what you " +
	"already know and say so."

// DocumentDescription is applied to every source created by an upload.
const DocumentDescription = "Uploaded by doc-agent-be"
