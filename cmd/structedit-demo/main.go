// Command structedit-demo is an interactive terminal host for the structedit
// library: it renders an editable pricing page, applies edits through the
// Definition, and persists comment threads through the CreateComment effect
// round trip.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeycumines/structedit"
	"github.com/joeycumines/structedit/internal/commentstore"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		commentsPath = flag.String("comments", "comments.json", "path to the comment store JSON file")
		authorName   = flag.String("author", defaultAuthor(), "author name attached to new comments")
		avatarURL    = flag.String("avatar", "", "author avatar URL attached to new comments")
		logPath      = flag.String("log", "", "optional debug log file")
	)
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := commentstore.Open(*commentsPath, logger)
	if err != nil {
		return fmt.Errorf("failed to open comment store: %w", err)
	}

	state := structedit.InitState(pageKey, store.Threads())
	author := structedit.Author{Name: *authorName, AvatarURL: *avatarURL}

	model := newEditorModel(store, state, author, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func defaultAuthor() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "anonymous"
}
