package cli

import (
	"fmt"
	"os"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/notes"
)

// Run executes the CLI with the given arguments.
func Run(args []string, svc notes.Service, directory clients.Directory) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return runList(cmdArgs, svc, directory)
	case "add", "a":
		return runAdd(cmdArgs, svc)
	case "delete", "rm", "del":
		return runDelete(cmdArgs, svc)
	case "clients":
		return runClients(directory)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println(`noteapp - Client note keeping

Usage: noteapp [flags] [command] [arguments]

Commands:
  list, ls    List all notes
              noteapp list                # All notes with client and category
              noteapp list -client <id>   # Only notes for one client

  add, a      Add a new note
              noteapp add -client client-001 -text "Session summary"
              noteapp add -client client-001 -category "Active Duty" -text "..."

  delete, rm  Delete a note
              noteapp delete <note-id>

  clients     List the client roster

  help        Show this help message

Flags:
  -data <dir>     Data directory (default ~/noteapp)
  -clients <file> Client roster file (JSON or YAML)

Running noteapp without a command launches the interactive TUI.`)
}
