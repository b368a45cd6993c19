// Package main is the sidekick entrypoint: an editor-style chat agent
// over a workspace, backed by Gemini.
package main

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/Cyclone1070/sidekick/internal/chat"
	"github.com/Cyclone1070/sidekick/internal/config"
	"github.com/Cyclone1070/sidekick/internal/provider/gemini"
	"github.com/Cyclone1070/sidekick/internal/registry"
	"github.com/Cyclone1070/sidekick/internal/ui"
	"github.com/Cyclone1070/sidekick/internal/workspace"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (defaults + ~/.config/sidekick/config.json).
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	// Workspace root: first argument, otherwise the current directory.
	root := ""
	if len(os.Args) > 1 {
		root = os.Args[1]
	} else {
		root, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	w, err := workspace.New(root, cfg)
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	p := gemini.New(gemini.NewRealGeminiClient(genaiClient), cfg.Model.Name)

	reg := registry.New()
	w.RegisterAll(reg, nil)

	// Status updates flow to the UI through a channel so the orchestrator
	// never blocks on rendering.
	statusCh := make(chan ui.StatusUpdate, 8)
	orch := chat.New(p, reg, chat.Options{
		EnableTools:  cfg.Chat.EnableTools,
		HistoryLimit: cfg.Chat.HistoryLimit,
		Status: func(phase, message string) {
			select {
			case statusCh <- ui.StatusUpdate{Phase: phase, Message: message}:
			default:
			}
		},
	})

	return ui.Run(orch, statusCh)
}
