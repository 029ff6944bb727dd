// scripts/openai-check/main.go
//
// One-shot credential probe: reads OPENAI_API_KEY from the environment,
// sends a fixed ping completion, and prints the model plus the reply.
//
// Usage:
//   OPENAI_API_KEY=sk-... go run scripts/openai-check/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"ai-health-assistant/pkg/openai"
)

func main() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	cfg := openai.Config{APIKey: apiKey}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Model = model
	}

	client, err := openai.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: openai.RoleUser, Content: "Reply with the single word: pong"},
		},
		MaxTokens: 5,
	})
	if err != nil {
		log.Fatalf("Completion failed: %v", err)
	}

	fmt.Printf("Model: %s\n", client.Model())
	fmt.Printf("Reply: %s\n", resp.Content)
	if resp.Usage != nil {
		fmt.Printf("Tokens: %d prompt / %d completion\n", resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}
}
