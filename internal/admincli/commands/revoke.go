package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/serranolabs/tokenadmin-go/internal/admincli"
	"github.com/serranolabs/tokenadmin-go/tokenadmin"
)

// RunRevoke revokes a batch of authorizations by ID.
func RunRevoke(args []string) error {
	fs := flag.NewFlagSet("revoke", flag.ContinueOnError)
	ids := fs.String("ids", "", "Comma-separated authorization ID GUIDs")
	g := admincli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			admincli.Panicf("missing required flag: %v", r)
		}
	}()

	admincli.MustNonEmpty(*ids, "-ids")
	admincli.MustNonEmpty(g.BaseURL, "-url")
	admincli.MustNonEmpty(g.PAT, "-pat")

	var authIDs []uuid.UUID
	for _, part := range strings.Split(*ids, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid authorization ID %q: %w", part, err)
		}
		authIDs = append(authIDs, id)
	}

	cl := admincli.NewClient(g)
	ctx, cancel := admincli.Ctx(g)
	defer cancel()

	if err := cl.RevokeAuthorizations(ctx, tokenadmin.NewRevocations(authIDs...)); err != nil {
		return err
	}
	admincli.PrintJSON(map[string]any{"revoked": len(authIDs)})
	return nil
}
