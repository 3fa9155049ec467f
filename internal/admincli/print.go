package admincli

import (
	"encoding/json"
	"fmt"
	"os"
)

// PrintJSON prints a value as pretty-printed JSON.
func PrintJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// PrintGlobalUsage renders the top-level usage text.
func PrintGlobalUsage(bin string) {
	fmt.Println(bin + ` - token administration CLI

USAGE:
  ` + bin + ` <command> [flags]

GLOBAL FLAGS:
  -url          	Organization URL (env ` + EnvBaseURL + `)
  -pat          	Admin personal access token (env ` + EnvPAT + `)
  -api-version  	API version override (env ` + EnvAPIVersion + `)
  -timeout      	Request timeout seconds (env ` + EnvTimeoutSec + `)
  -config       	YAML config file (flag > env > file > default)
  -v            	Verbose logs

COMMANDS:
  descriptor  	-id <storage-key-guid>          Resolve a subject descriptor
  users list  	[-token <continuation>]         One page of users
  users all   	                                Every user (full walk)
  pats list   	-descriptor <d> [-page-size n -token <guid>]
  pats all    	-descriptor <d> [-page-size n]
  pats all-users	[-page-size n]                PATs for every user
  revoke      	-ids <guid,guid,...>            Revoke authorizations
  revoke-rule 	-scopes "<scopes>" -created-before <RFC3339>

EXAMPLES:
  ` + bin + ` users all -url https://dev.azure.com/fabrikam -pat ***
  ` + bin + ` pats all -descriptor aad.YWJjZGVm -page-size 20
  ` + bin + ` revoke -ids 1111...,2222...
  ` + bin + ` revoke-rule -scopes "vso.packaging" -created-before 2026-01-01T00:00:00Z
`)
}

// Panicf is a small helper for required flag validation in subcommands.
func Panicf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
