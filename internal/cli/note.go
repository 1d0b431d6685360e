package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/notes"
)

func runList(args []string, svc notes.Service, directory clients.Directory) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	clientFilter := fs.String("client", "", "Only notes for this client id")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	collection, err := svc.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading notes: %v\n", err)
		return 1
	}

	shown := 0
	for _, n := range collection {
		if *clientFilter != "" && n.ClientID != *clientFilter {
			continue
		}
		name := directory.ResolveName(n.ClientID)
		fmt.Printf("%s  %-24s [%s]  %s\n", n.ID, name, n.Category, n.Preview(60))
		shown++
	}

	if shown == 0 {
		fmt.Println("No notes found.")
	}
	return 0
}

func runAdd(args []string, svc notes.Service) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	clientID := fs.String("client", "", "Client id the note is about")
	category := fs.String("category", "", "Note category (defaults to "+notes.DefaultCategory()+")")
	text := fs.String("text", "", "Note text")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	n, err := svc.Create(*clientID, *category, *text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding note: %v\n", err)
		return 1
	}

	fmt.Printf("Added note %s\n", n.ID)
	return 0
}

func runDelete(args []string, svc notes.Service) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: note id required")
		fmt.Fprintln(os.Stderr, "Usage: noteapp delete <note-id>")
		return 1
	}

	id := args[0]
	if _, err := svc.Get(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := svc.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting note: %v\n", err)
		return 1
	}

	fmt.Printf("Deleted note %s\n", id)
	return 0
}

func runClients(directory clients.Directory) int {
	roster := directory.ListAll()
	if len(roster) == 0 {
		fmt.Println("No clients found.")
		return 0
	}

	for _, c := range roster {
		fmt.Printf("%-12s %s\n", c.ID, c.Name)
	}
	return 0
}
