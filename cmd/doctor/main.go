package main

import (
	"context"
	"os"

	"doc-agent-be/internal/config"
	"doc-agent-be/pkg/letta"

	"github.com/fatih/color"
)

// Connectivity probe for the agent backend. Run it when uploads or chat
// stop working to check the backend is reachable and what it holds.
func main() {
	cfg := config.Load()

	color.Cyan("🚀 Agent Backend Doctor\n")
	color.Yellow("Backend: %s", cfg.Backend.BaseURL)

	api := letta.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token)
	ctx := context.Background()

	color.Yellow("\n1. List Agents")
	agents, err := api.ListAgents(ctx)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("OK: %d agent(s)", len(agents))
	for _, a := range agents {
		marker := "  "
		if a.Name == cfg.Agent.Name {
			marker = "✅"
		}
		color.White("%s %s (%s)", marker, a.Name, a.ID)
	}

	color.Yellow("\n2. List Documents")
	sources, err := api.ListSources(ctx)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("OK: %d document(s)", len(sources))
	for _, s := range sources {
		color.White("   %s (%s)", s.Name, s.ID)
	}

	color.Yellow("\n3. Attachments")
	for _, a := range agents {
		if a.Name != cfg.Agent.Name {
			continue
		}
		attached, err := api.ListAgentSources(ctx, a.ID)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("OK: %d of %d document(s) attached to %s", len(attached), len(sources), a.Name)
	}

	color.Cyan("\nAll checks passed.")
}
