package main

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/romchy222/AI-SANA/internal/admin"
	"github.com/romchy222/AI-SANA/internal/agent"
	"github.com/romchy222/AI-SANA/internal/auth"
	"github.com/romchy222/AI-SANA/internal/cache"
	"github.com/romchy222/AI-SANA/internal/chat"
	"github.com/romchy222/AI-SANA/internal/config"
	"github.com/romchy222/AI-SANA/internal/db"
	"github.com/romchy222/AI-SANA/internal/llm"
	"github.com/romchy222/AI-SANA/internal/ratelimit"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize database
	database, err := db.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Initialize rate limiter
	limiter, err := ratelimit.NewRateLimiter(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to initialize rate limiter:", err)
	}
	defer limiter.Close()

	// Initialize response cache
	responseCache := cache.NewResponseCache(cfg.CacheMaxSize, cfg.CacheTTL)

	// Initialize LLM gateway
	mistral := llm.NewMistralClient(llm.Config{
		APIKey:  cfg.MistralAPIKey,
		BaseURL: cfg.MistralBaseURL,
		Model:   cfg.MistralModel,
		Timeout: cfg.MistralTimeout,
	})

	// Initialize agent router with the five university agents
	agentRouter := agent.NewRouter(database, mistral, responseCache)

	// Initialize HTTP router
	router := mux.NewRouter()

	// Auth middleware for the admin API
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	// Public routes
	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.HandleFunc("/auth/token", tokenHandler(cfg.AdminAPIKey, cfg.JWTSecret)).Methods("POST")

	chatHandler := chat.NewHandler(agentRouter, limiter, database, cfg.RateLimitPerHour)
	chatHandler.RegisterRoutes(router)

	// Protected admin routes
	adminHandler := admin.NewAdminHandler(database, responseCache)
	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(authMiddleware.Authenticate)
	adminHandler.RegisterRoutes(adminRouter)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Printf("Chat API available at /api/chat")
	log.Printf("Admin API available at /admin/*")
	if err := http.ListenAndServe(":"+cfg.ServerPort, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

func tokenHandler(adminAPIKey, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			APIKey string `json:"api_key"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		if adminAPIKey == "" ||
			subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(adminAPIKey)) != 1 {
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
			return
		}

		token, err := auth.GenerateToken("admin", jwtSecret)
		if err != nil {
			log.Printf("Token generation failed: %v", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}
