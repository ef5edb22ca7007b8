package cmd

import (
	"fmt"
	"os"

	"github.com/trio-sh/academy-builder-sub001/internal/app"
	"github.com/trio-sh/academy-builder-sub001/internal/capture"
	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	recognizer, synthesizer := capture.FromEnv()

	opts := app.Options{
		Catalog:    catalog.Default(),
		EventRepo:  eventRepo,
		SnapRepo:   st.SnapshotRepo(),
		Recognizer: recognizer,
		Narrator:   capture.NewNarrator(synthesizer, os.Getenv("ACADEMY_VOICE"), "en"),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Spoken and written challenges will be scored with neutral fallbacks.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
