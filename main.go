package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"trivia-platform/database"
	"trivia-platform/game"
	"trivia-platform/handlers"
	"trivia-platform/middleware"
)

func main() {
	godotenv.Load()

	// The catalog is required; the process cannot start without it.
	catalog, err := game.Load(getEnv("GAME_DATA", "data.json"), getEnv("IMAGE_PREFIX", "LAUGH"))
	if err != nil {
		log.Fatal("Catalog load error: ", err)
	}
	images := catalog.AvailableImages()
	log.Printf("Catalog loaded: %d images available", len(images))
	if len(images) > 0 {
		log.Printf("Image range: %d - %d", images[0], images[len(images)-1])
	}

	// Without usable credentials the whole system runs on mock data
	// instead of refusing to start.
	var db database.Store
	live, err := database.Connect(context.Background())
	if err != nil {
		log.Printf("Store unavailable, using mock data: %v", err)
		db = database.NewMock()
	} else {
		db = live
	}
	defer db.Close()

	store := sessions.NewCookieStore([]byte(getEnv("SESSION_KEY", "super-secret-key")))
	jwtSecret := []byte(getEnv("JWT_SECRET", "jwt-secret-key"))

	r := mux.NewRouter()
	r.Use(middleware.Logger)

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./static/"))))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", handlers.APILogin(db, jwtSecret)).Methods("POST", "OPTIONS")

	protected := api.PathPrefix("/").Subrouter()
	protected.Use(middleware.Auth(store, jwtSecret))
	protected.HandleFunc("/status", handlers.APIStatus(db)).Methods("GET")
	protected.HandleFunc("/update_score", handlers.UpdateScore(db)).Methods("POST", "OPTIONS")
	protected.HandleFunc("/complete_image", handlers.CompleteImage(db)).Methods("POST", "OPTIONS")

	ws := r.PathPrefix("/ws").Subrouter()
	ws.Use(middleware.Auth(store, jwtSecret))
	ws.HandleFunc("/status", handlers.StatusWebSocket(db))

	// Page routes
	r.HandleFunc("/", handlers.Index(store)).Methods("GET")
	r.HandleFunc("/login", handlers.LoginPage(store)).Methods("GET")
	r.HandleFunc("/login", handlers.Login(db, store)).Methods("POST")
	r.HandleFunc("/dashboard", middleware.RequireSession(store, handlers.DashboardPage(db, catalog))).Methods("GET")
	r.HandleFunc("/image-select", middleware.RequireSession(store, handlers.ImageSelectPage(catalog))).Methods("GET")
	r.HandleFunc("/game/{number:[0-9]+}", middleware.RequireSession(store, handlers.GamePage(catalog))).Methods("GET")
	r.HandleFunc("/logout", handlers.Logout(store)).Methods("GET")

	// Diagnostics
	r.HandleFunc("/debug-images", handlers.DebugImages(catalog)).Methods("GET")
	r.HandleFunc("/debug-difficulties", handlers.DebugDifficulties(catalog)).Methods("GET")
	r.HandleFunc("/debug-leaderboard", middleware.RequireSession(store, handlers.DebugLeaderboard(db))).Methods("GET")
	r.HandleFunc("/check-image/{number:[0-9]+}", handlers.CheckImage(catalog)).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:8181"), ","),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})
	handler := c.Handler(r)

	addr := getEnv("ADDR", ":8181")
	srv := &http.Server{
		Handler:      handler,
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Println("Server starting on", addr)
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
