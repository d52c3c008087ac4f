package store

import "time"

// Document is a cached read copy of a backend "source". The backend owns it;
// the copy is invalidated by re-fetching after any mutation.
type Document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Agent is the backend-hosted conversational entity. Exactly one agent is
// active per session, selected or created during bootstrap.
type Agent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Upload task lifecycle. A task is terminal once completed or failed.
const (
	TaskStatusUploading  = "uploading"
	TaskStatusProcessing = "processing"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
)

// UploadTask tracks one file's ingestion progress. One task per file per drop
// event; a retry is a brand new task, ids are never reused.
type UploadTask struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"` // 0-100
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationTurn is one entry of the append-only conversation log.
// Ordering is arrival order, not backend event order.
type ConversationTurn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // user | assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
