package main

import (
	"fmt"
	"os"

	"github.com/serranolabs/tokenadmin-go/internal/admincli"
	"github.com/serranolabs/tokenadmin-go/internal/admincli/commands"
)

// Entry point for the official CLI: tokenadmctl.
func main() {
	if len(os.Args) < 2 {
		admincli.PrintGlobalUsage("tokenadmctl")
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "help", "-h", "--help":
		admincli.PrintGlobalUsage("tokenadmctl")
		return

	case "descriptor":
		if err := commands.RunDescriptor(args); err != nil {
			fail(err)
		}
	case "users":
		if err := commands.RunUsers(args); err != nil {
			fail(err)
		}
	case "pats":
		if err := commands.RunPATs(args); err != nil {
			fail(err)
		}
	case "revoke":
		if err := commands.RunRevoke(args); err != nil {
			fail(err)
		}
	case "revoke-rule":
		if err := commands.RunRevokeRule(args); err != nil {
			fail(err)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		admincli.PrintGlobalUsage("tokenadmctl")
		os.Exit(2)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
