package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/laika"
	"github.com/erraggy/laika/cmd/laika/commands"
	"github.com/erraggy/laika/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("laika v%s\n", laika.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		runOrExit(commands.HandleParse(args))
	case "config":
		runOrExit(commands.HandleConfig(args))
	case "legacy":
		runOrExit(commands.HandleLegacy(args))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		runOrExit(mcpserver.Run(ctx))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runOrExit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`laika - a multi-format document toolchain

Usage:
  laika <command> [options]

Commands:
  parse     Parse a document and print a debug tree dump
  config    Resolve a HOCON document and print its configuration as JSON
  legacy    Rewrite legacy directive/substitution syntax into canonical form
  mcp       Start an MCP server over stdio
  version   Show version information
  help      Show this help message

Run 'laika <command> -h' for more information on a command.`)
}
