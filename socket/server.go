package socket

import (
	"log"

	"github.com/Geraxi/tenant-rork-sub001/models"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the Socket.IO server and the rooms convention: every
// client joins "user:<userId>" after connecting, and "match:<matchId>"
// for each open chat.
type Server struct {
	IO *socketio.Server
}

// NewServer initializes the Socket.IO server and its event handlers
func NewServer() *Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	io.OnEvent("/", "join", func(c socketio.Conn, data map[string]string) {
		if userID := data["userId"]; userID != "" {
			c.Join("user:" + userID)
			log.Printf("👥 Socket %s joined user room %s", c.ID(), userID)
		}
		if matchID := data["matchId"]; matchID != "" {
			c.Join("match:" + matchID)
			log.Printf("👥 Socket %s joined match room %s", c.ID(), matchID)
		}
	})

	io.OnEvent("/", "leave", func(c socketio.Conn, data map[string]string) {
		if matchID := data["matchId"]; matchID != "" {
			c.Leave("match:" + matchID)
		}
	})

	io.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("❌ Socket error: %v", err)
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return &Server{IO: io}
}

// NotifyMatch pushes a newMatch event to both parties
func (s *Server) NotifyMatch(match models.Match) {
	s.IO.BroadcastToRoom("/", "user:"+match.TenantID, "newMatch", match)
	s.IO.BroadcastToRoom("/", "user:"+match.LandlordID, "newMatch", match)
}

// NotifyMessage pushes a newMessage event to the match room
func (s *Server) NotifyMessage(message models.Message) {
	s.IO.BroadcastToRoom("/", "match:"+message.MatchID, "newMessage", message)
}
