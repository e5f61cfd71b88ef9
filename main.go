package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Geraxi/tenant-rork-sub001/routes"
	"github.com/Geraxi/tenant-rork-sub001/services"
	"github.com/Geraxi/tenant-rork-sub001/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
}

// buildStores wires either the DynamoDB stores or the in-memory ones,
// depending on STORAGE_BACKEND.
func buildStores() (services.ActorStore, services.PropertyStore, services.LikeLedger, services.MatchStore, services.MessageStore) {
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		log.Println("⚠️ Using in-memory storage (development mode)")
		return services.NewMemoryActorStore(),
			services.NewMemoryPropertyStore(),
			services.NewMemoryLikeLedger(),
			services.NewMemoryMatchStore(),
			services.NewMemoryMessageStore()
	}

	log.Println("Initializing DynamoDB client...")
	dynamo := &services.DynamoService{Client: services.InitializeDynamoDBClient()}
	log.Println("DynamoDB client initialized.")
	return &services.DynamoActorStore{Dynamo: dynamo},
		&services.DynamoPropertyStore{Dynamo: dynamo},
		&services.DynamoLikeLedger{Dynamo: dynamo},
		&services.DynamoMatchStore{Dynamo: dynamo},
		&services.DynamoMessageStore{Dynamo: dynamo}
}

func main() {
	loadEnv()

	actors, properties, likes, matches, messages := buildStores()
	entities := services.NewEntityStore(actors, properties)
	cache := &services.CacheService{Client: services.InitializeRedisClient()}

	// Socket.IO server for realtime match/chat events
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.IO.Serve(); err != nil {
			log.Printf("❌ Socket server error: %v", err)
		}
	}()
	defer socketServer.IO.Close()

	matchingService := &services.MatchingService{
		Entities: entities,
		Likes:    likes,
		Matches:  matches,
		OnMatch:  socketServer.NotifyMatch,
	}
	matchQueryService := &services.MatchQueryService{Entities: entities, Matches: matches}
	userProfileService := &services.UserProfileService{Actors: actors, Likes: likes, Matches: matches}
	propertyService := &services.PropertyService{Properties: properties, Likes: likes, Matches: matches, Cache: cache}
	chatService := &services.ChatService{
		Messages:  messages,
		Matches:   matches,
		OnMessage: socketServer.NotifyMessage,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to the Tenant API")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	routes.RegisterSwipeRoutes(r, matchingService)
	routes.RegisterMatchRoutes(r, matchQueryService, matchingService)
	routes.RegisterFeedRoutes(r, propertyService, userProfileService)
	routes.RegisterPropertyRoutes(r, propertyService)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterChatRoutes(r, chatService)

	if mediaService, err := services.NewMediaService(context.Background()); err != nil {
		log.Printf("⚠️ Media routes disabled: %v", err)
	} else {
		routes.RegisterMediaRoutes(r, mediaService)
	}

	r.Handle("/socket.io/", socketServer.IO)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
