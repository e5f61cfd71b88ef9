package routes

import (
	"github.com/Geraxi/tenant-rork-sub001/controllers"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up chat routes under /api/chat
func RegisterChatRoutes(r *mux.Router, chat *services.ChatService) {
	controller := controllers.NewChatController(chat)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/{matchId}/messages", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/{matchId}/messages", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/{matchId}/read", controller.MarkMessagesRead).Methods("POST")
}
