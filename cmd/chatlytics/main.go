package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/chatlytics/chatlytics-go/internal/config"
	"github.com/chatlytics/chatlytics-go/pkg/chatlytics"
)

// main tracks one example conversation cycle: a thread, a user message and
// a model run. It doubles as a smoke test against a live deployment.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := chatlytics.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	userID := os.Getenv("CHATLYTICS_DEMO_USER")
	if userID == "" {
		userID = "demo-user"
	}

	threadID := chatlytics.NewID()
	thread, err := client.CreateThread(ctx, chatlytics.ThreadRequest{
		ThreadID: threadID,
		UserID:   userID,
	})
	if err != nil {
		log.Fatalf("Failed to create thread: %v", err)
	}
	log.Printf("Tracked %s", thread)

	message, err := client.CreateMessage(ctx, chatlytics.MessageRequest{
		ThreadID:  threadID,
		Message:   "What is the weather like today?",
		MessageID: chatlytics.NewID(),
	})
	if err != nil {
		log.Fatalf("Failed to create message: %v", err)
	}
	log.Printf("Tracked %s", message)

	run, err := client.CreateRun(ctx, chatlytics.RunRequest{
		ThreadID: threadID,
		RunID:    chatlytics.NewID(),
		Response: "It looks sunny with a light breeze this afternoon.",
	})
	if err != nil {
		log.Fatalf("Failed to create run: %v", err)
	}
	log.Printf("Tracked %s", run)
}
