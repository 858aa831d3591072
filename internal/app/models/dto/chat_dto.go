package dto

// ChatTurn is one prior exchange in the tutoring conversation
type ChatTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is the payload of one tutoring question. History is the
// bounded trailing window of prior turns the client chooses to send.
type ChatRequest struct {
	Message string     `json:"message" binding:"required,max=2000"`
	History []ChatTurn `json:"history" binding:"max=20,dive"`
}

// ChatResponse carries the post-processed assistant reply
type ChatResponse struct {
	Reply string `json:"reply"`
}
