package commands

import (
	"errors"
	"flag"

	"github.com/serranolabs/tokenadmin-go/internal/admincli"
	"github.com/serranolabs/tokenadmin-go/tokenadmin"
)

// RunPATs dispatches to list|all|all-users subcommands.
func RunPATs(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: tokenadmctl pats <list|all|all-users> [flags]")
	}
	switch args[0] {
	case "list":
		return runPATsList(args[1:])
	case "all":
		return runPATsAll(args[1:])
	case "all-users":
		return runPATsAllUsers(args[1:])
	default:
		return errors.New("unknown pats subcommand; use list|all|all-users")
	}
}

func runPATsList(args []string) error {
	fs := flag.NewFlagSet("pats list", flag.ContinueOnError)
	descriptor := fs.String("descriptor", "", "Subject descriptor")
	pageSize := fs.Int("page-size", 0, "Page size (service enforces its own maximum)")
	token := fs.String("token", "", "Continuation token GUID from a previous page")
	g := admincli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			admincli.Panicf("missing required flag: %v", r)
		}
	}()

	admincli.MustNonEmpty(*descriptor, "-descriptor")
	admincli.MustNonEmpty(g.BaseURL, "-url")
	admincli.MustNonEmpty(g.PAT, "-pat")

	cl := admincli.NewClient(g)
	ctx, cancel := admincli.Ctx(g)
	defer cancel()

	page, err := cl.ListPersonalAccessTokens(ctx, *descriptor, *pageSize, *token)
	if err != nil {
		return err
	}
	admincli.PrintJSON(page)
	return nil
}

func runPATsAll(args []string) error {
	fs := flag.NewFlagSet("pats all", flag.ContinueOnError)
	descriptor := fs.String("descriptor", "", "Subject descriptor")
	pageSize := fs.Int("page-size", 0, "Page size (service enforces its own maximum)")
	g := admincli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			admincli.Panicf("missing required flag: %v", r)
		}
	}()

	admincli.MustNonEmpty(*descriptor, "-descriptor")
	admincli.MustNonEmpty(g.BaseURL, "-url")
	admincli.MustNonEmpty(g.PAT, "-pat")

	cl := admincli.NewClient(g)
	ctx, cancel := admincli.Ctx(g)
	defer cancel()

	tokens, err := cl.ListAllPersonalAccessTokens(ctx, *descriptor, *pageSize)
	if err != nil {
		return err
	}
	admincli.PrintJSON(tokens)
	return nil
}

// runPATsAllUsers walks every user in the organization and prints each
// user's personal access tokens. This is the admin audit sequence: user
// pages via the graph endpoint, then a token walk per descriptor.
func runPATsAllUsers(args []string) error {
	fs := flag.NewFlagSet("pats all-users", flag.ContinueOnError)
	pageSize := fs.Int("page-size", 0, "Token page size per user")
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

	var walkErr error
	err := cl.EachUserPage(ctx, func(page []tokenadmin.GraphUser) {
		if walkErr != nil {
			return
		}
		for _, u := range page {
			tokens, err := cl.ListAllPersonalAccessTokens(ctx, u.Descriptor, *pageSize)
			if err != nil {
				walkErr = err
				return
			}
			admincli.PrintJSON(map[string]any{
				"descriptor":  u.Descriptor,
				"displayName": u.DisplayName,
				"tokenCount":  len(tokens),
				"tokens":      tokens,
			})
		}
	})
	if err != nil {
		return err
	}
	return walkErr
}
