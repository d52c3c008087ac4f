package letta

// Wire types for the agent-management service. Field names follow the
// backend's documented JSON shapes.

// Source is a unit of uploaded content, attachable to an agent.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Agent is the backend-hosted conversational entity.
type Agent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type LLMConfig struct {
	Model             string `json:"model"`
	ModelEndpointType string `json:"model_endpoint_type"`
	ContextWindow     int    `json:"context_window"`
}

type EmbeddingConfig struct {
	EmbeddingModel        string `json:"embedding_model"`
	EmbeddingEndpointType string `json:"embedding_endpoint_type"`
	EmbeddingDim          int    `json:"embedding_dim"`
	EmbeddingChunkSize    int    `json:"embedding_chunk_size,omitempty"`
}

type CreateSourceRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	EmbeddingConfig EmbeddingConfig `json:"embedding_config"`
}

type CreateAgentRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	AgentType       string          `json:"agent_type"`
	LLMConfig       LLMConfig       `json:"llm_config"`
	EmbeddingConfig EmbeddingConfig `json:"embedding_config"`
	Tools           []string        `json:"tools"`
	System          string          `json:"system,omitempty"`
}

// Message is one submitted chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

type MessageRequest struct {
	Messages []Message `json:"messages"`
}
