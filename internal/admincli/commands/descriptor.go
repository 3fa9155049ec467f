package commands

import (
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/serranolabs/tokenadmin-go/internal/admincli"
)

// RunDescriptor resolves a subject's storage key to its descriptor.
func RunDescriptor(args []string) error {
	fs := flag.NewFlagSet("descriptor", flag.ContinueOnError)
	id := fs.String("id", "", "Subject storage key (GUID)")
	g := admincli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			admincli.Panicf("missing required flag: %v", r)
		}
	}()

	admincli.MustNonEmpty(*id, "-id")
	admincli.MustNonEmpty(g.BaseURL, "-url")
	admincli.MustNonEmpty(g.PAT, "-pat")

	storageKey, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid -id: %w", err)
	}

	cl := admincli.NewClient(g)
	ctx, cancel := admincli.Ctx(g)
	defer cancel()

	desc, err := cl.GetDescriptor(ctx, storageKey)
	if err != nil {
		return err
	}
	admincli.PrintJSON(map[string]string{"descriptor": desc})
	return nil
}
