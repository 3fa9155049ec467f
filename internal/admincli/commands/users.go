package commands

import (
	"errors"
	"flag"

	"github.com/serranolabs/tokenadmin-go/internal/admincli"
	"github.com/serranolabs/tokenadmin-go/tokenadmin"
)

// RunUsers dispatches to list|all subcommands.
func RunUsers(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: tokenadmctl users <list|all> [flags]")
	}
	switch args[0] {
	case "list":
		return runUsersList(args[1:])
	case "all":
		return runUsersAll(args[1:])
	default:
		return errors.New("unknown users subcommand; use list|all")
	}
}

func runUsersList(args []string) error {
	fs := flag.NewFlagSet("users list", flag.ContinueOnError)
	token := fs.String("token", "", "Continuation token from a previous page")
	g := admincli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			admincli.Panicf("missing required flag: %v", r)
		}
	}()

	admincli.MustNonEmpty(g.BaseURL, "-url")
	admincli.MustNonEmpty(g.PAT, "-pat")

	cl := admincli.NewClient(g)
	ctx, cancel := admincli.Ctx(g)
	defer cancel()

	users, next, err := cl.ListUsers(ctx, *token)
	if err != nil {
		return err
	}
	admincli.PrintJSON(map[string]any{
		"count":             len(users),
		"value":             users,
		"continuationToken": next,
	})
	return nil
}

func runUsersAll(args []string) error {
	fs := flag.NewFlagSet("users all", flag.ContinueOnError)
	g := admincli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			admincli.Panicf("missing required flag: %v", r)
		}
	}()

	admincli.MustNonEmpty(g.BaseURL, "-url")
	admincli.MustNonEmpty(g.PAT, "-pat")

	cl := admincli.NewClient(g)
	ctx, cancel := admincli.Ctx(g)
	defer cancel()

	// Stream page by page; a large organization never needs to fit in
	// memory at once.
	return cl.EachUserPage(ctx, func(page []tokenadmin.GraphUser) {
		for _, u := range page {
			admincli.PrintJSON(u)
		}
	})
}
