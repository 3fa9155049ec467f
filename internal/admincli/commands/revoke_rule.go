package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/serranolabs/tokenadmin-go/internal/admincli"
	"github.com/serranolabs/tokenadmin-go/tokenadmin"
)

// RunRevokeRule installs a standing revocation rule.
func RunRevokeRule(args []string) error {
	fs := flag.NewFlagSet("revoke-rule", flag.ContinueOnError)
	scopes := fs.String("scopes", "", "Space-separated scope list")
	createdBefore := fs.String("created-before", "", "RFC3339 cutoff; older credentials are rejected")
	g := admincli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			admincli.Panicf("missing required flag: %v", r)
		}
	}()

	admincli.MustNonEmpty(*scopes, "-scopes")
	admincli.MustNonEmpty(*createdBefore, "-created-before")
	admincli.MustNonEmpty(g.BaseURL, "-url")
	admincli.MustNonEmpty(g.PAT, "-pat")

	cutoff, err := time.Parse(time.RFC3339, *createdBefore)
	if err != nil {
		return fmt.Errorf("invalid -created-before: %w", err)
	}

	cl := admincli.NewClient(g)
	ctx, cancel := admincli.Ctx(g)
	defer cancel()

	rule := tokenadmin.RevocationRule{Scopes: *scopes, CreatedBefore: cutoff}
	if err := cl.CreateRevocationRule(ctx, rule); err != nil {
		return err
	}
	admincli.PrintJSON(rule)
	return nil
}
