// Command mcp-remindu serves the reminder tools over MCP on stdio.
//
// It reads the same environment as the HTTP server, so both can share one
// storage; each write merges with what the other process stored. Logs go
// to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"remindu/internal/app/deps"
	"remindu/internal/app/services"
	"remindu/internal/mcp"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		}
	}

	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	s := mcp.NewServer(deps.Logger, services.InitServices(deps))
	if err := server.ServeStdio(s.MCPServer()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		shutdownDeps()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`remindu MCP server

USAGE:
    mcp-remindu          Start MCP server (communicates via stdio)
    mcp-remindu --help   Show this help

ENVIRONMENT:
    STORAGE_DRIVER   sqlite (default), postgres, redis or memory
    SQLITE_PATH      SQLite database file (default: remindu.db)
    TIMEZONE         Zone used for date suggestions (default: Local)

TOOLS:
    add_reminder     Add a reminder (description, date_time, title, type, category_id, repeat_days)
    list_reminders   List reminders, optionally for one date
    suggest_dates    Quick date picks
    list_categories  List categories
    add_category     Add a category (name, icon, color)`)
}
