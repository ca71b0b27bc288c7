package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adamspd/InterviewCoach/agent"
	"github.com/adamspd/InterviewCoach/db"
	"github.com/adamspd/InterviewCoach/handlers"
	"github.com/adamspd/InterviewCoach/interview"
	"github.com/adamspd/InterviewCoach/jobs"
	"github.com/adamspd/InterviewCoach/notify"
	"github.com/adamspd/InterviewCoach/utils"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging with timestamps
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	utils.LogStartup("Interview Coach API starting...")

	if err := godotenv.Load(); err != nil {
		utils.LogDebug("No .env file found, using process environment")
	}

	port := utils.GetEnvOrDefault("PORT", "8050")
	dbPath := utils.GetEnvOrDefault("DB_PATH", "./interviews.db")
	redisURL := utils.GetEnvOrDefault("REDIS_URL", "redis://localhost:6379")
	responseMode := utils.GetEnvOrDefault("RESPONSE_MODE", "always")
	cooldownSeconds := utils.GetEnvInt("COOLDOWN_SECONDS", 25)
	idleHours := utils.GetEnvInt("SESSION_IDLE_HOURS", 2)
	utils.LogStartup("Config: port=%s db=%s mode=%s cooldown=%ds", port, dbPath, responseMode, cooldownSeconds)

	// Initialize database
	database, err := db.InitDB(dbPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize database: %v", err)
	}

	// Session registry and the interview engine
	registry := interview.NewRegistry(time.Duration(idleHours) * time.Hour)
	responder := agent.NewClientFromEnv()

	var policy interview.Policy
	allowSilent := false
	if responseMode == "silence" {
		policy = interview.NewSilencePolicy(time.Duration(cooldownSeconds) * time.Second)
		allowSilent = true
		utils.LogStartup("Using silence-driven intervention policy")
	} else {
		policy = interview.AlwaysRespondPolicy
		utils.LogStartup("Using always-respond (push-to-talk) policy")
	}
	engine := interview.NewEngine(responder, policy, allowSilent)

	// Report delivery pipeline
	emailConfig := notify.LoadEmailConfig()
	emailService := notify.NewEmailService(emailConfig)
	jobManager := jobs.NewJobManager(redisURL)
	jobManager.RegisterHandlers(emailService)

	go func() {
		if err := jobManager.Start(); err != nil {
			utils.LogError("Job queue worker stopped: %v", err)
		}
	}()

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		utils.LogShutdown("Received shutdown signal")
		jobManager.Stop()
		if err := database.Close(); err != nil {
			utils.LogError("Error closing database: %v", err)
		} else {
			utils.LogShutdown("Database connection closed successfully")
		}
		os.Exit(0)
	}()

	// Setup API routes
	router := handlers.NewRouter(database, registry, engine, jobManager)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // responder calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	utils.LogStartup("Server ready to accept connections at http://localhost:%s", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[FATAL] Server failed to start: %v", err)
	}
}
