package dto

import "time"

type DocumentResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UploadTaskResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadAcceptedResponse acknowledges a drop: one task per file, progress is
// observed over the websocket feed or via the uploads endpoint.
type UploadAcceptedResponse struct {
	Tasks []UploadTaskResponse `json:"tasks"`
}

// PublishDocumentIngestedMessage is the payload on the DOCUMENT_INGESTED topic.
type PublishDocumentIngestedMessage struct {
	DocumentId string `json:"document_id"`
	Name       string `json:"name"`
}
