package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.isLocked() {
		return "(locked)"
	}
	return "(unlocked)"
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to padre (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("padre %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: (l)ist, find <domain>, show <n>, all, add, delete <n>, import [file], export [file], lock, exit")

		case "list", "l":
			a.list(ctx)
		case "find":
			if len(args) == 0 {
				fmt.Println("Usage: find <domain>")
				continue
			}
			a.find(ctx, args[0])
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <n>")
				continue
			}
			a.show(ctx, args[0])
		case "all":
			a.deriveAll(ctx)
		case "add":
			a.add(ctx)
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <n>")
				continue
			}
			a.delete(ctx, args[0])
		case "import":
			a.importFile(ctx, firstOrEmpty(args))
		case "export":
			a.exportFile(ctx, firstOrEmpty(args))
		case "lock":
			a.Lock(ctx)
		case "exit", "quit":
			a.Lock(ctx)
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

	a.Lock(ctx)
}

func firstOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
