package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// ChatController handles HTTP requests for match chat
type ChatController struct {
	Chat *services.ChatService
}

// NewChatController creates a new ChatController instance
func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

// SendMessage handles posting a message to a match
func (cc *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var req struct {
		SenderID string `json:"senderId"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SenderID == "" {
		http.Error(w, "senderId is required", http.StatusBadRequest)
		return
	}

	message, err := cc.Chat.SendMessage(r.Context(), matchID, req.SenderID, req.Content)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to send message: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(message)
}

// GetMessages handles fetching a match's messages, newest first
func (cc *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	messages, err := cc.Chat.GetMessages(r.Context(), matchID, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"messages": messages,
	})
}

// MarkMessagesRead handles flagging received messages as read
func (cc *ChatController) MarkMessagesRead(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var req struct {
		ReaderID string `json:"readerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReaderID == "" {
		http.Error(w, "readerId is required", http.StatusBadRequest)
		return
	}

	if err := cc.Chat.MarkMessagesRead(r.Context(), matchID, req.ReaderID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to mark messages read: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Messages marked as read"})
}
