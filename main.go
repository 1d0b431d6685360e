package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yong-ling/noteapp/internal/cli"
	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/config"
	"github.com/yong-ling/noteapp/internal/logs"
	"github.com/yong-ling/noteapp/internal/notes"
	"github.com/yong-ling/noteapp/internal/storage"
	"github.com/yong-ling/noteapp/internal/tui"
)

func main() {
	// Parse CLI flags
	dataDirFlag := flag.String("data", "", "Data directory")
	clientsFlag := flag.String("clients", "", "Client roster file (JSON or YAML)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{
		DataDir:     *dataDirFlag,
		ClientsFile: *clientsFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Ensure data directory exists
	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Reinitialize logger into the data directory
	if err := logs.Initialize(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	// Wire the note store and client directory
	store := notes.NewStore(storage.New(cfg.DataDir))
	svc, err := notes.NewService(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open note store: %v\n", err)
		os.Exit(1)
	}
	directory := clients.NewFileDirectory(cfg.ClientsFile)

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		exitCode := cli.Run(args, svc, directory)
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, svc, directory, store)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
