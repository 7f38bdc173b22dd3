package models

// ChatRequest is a free-form question for the campus assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse always carries a body, even when the language model is down.
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// DocumentQueryRequest asks a question about pasted document text.
type DocumentQueryRequest struct {
	DocumentText string `json:"document_text"`
	Query        string `json:"query"`
}

// DocumentQueryResponse carries the analysis result.
type DocumentQueryResponse struct {
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}
