package admincli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment keys for defaults.
const (
	EnvBaseURL    = "TOKENADMIN_URL"
	EnvPAT        = "TOKENADMIN_PAT"
	EnvAPIVersion = "TOKENADMIN_API_VERSION"
	EnvTimeoutSec = "TOKENADMIN_TIMEOUT" // seconds
)

// DefaultTimeoutSec bounds each command's end-to-end run, including full
// pagination walks.
const DefaultTimeoutSec = 90

// GlobalFlags captures CLI-wide settings and defaults.
type GlobalFlags struct {
	BaseURL    string
	PAT        string
	APIVersion string

	Timeout time.Duration
	Verbose bool
}

// fileConfig is the optional YAML config file shape (-config).
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	PAT            string `yaml:"pat"`
	APIVersion     string `yaml:"api_version"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ParseGlobalFlagsArgs binds global flags to the provided FlagSet and parses
// args. Precedence: explicit flag > environment > config file > default.
func ParseGlobalFlagsArgs(fs *flag.FlagSet, args []string) GlobalFlags {
	var g GlobalFlags

	fs.StringVar(&g.BaseURL, "url", os.Getenv(EnvBaseURL), "Organization URL (env "+EnvBaseURL+")")
	fs.StringVar(&g.PAT, "pat", os.Getenv(EnvPAT), "Admin personal access token (env "+EnvPAT+")")
	fs.StringVar(&g.APIVersion, "api-version", os.Getenv(EnvAPIVersion), "API version override (env "+EnvAPIVersion+")")

	timeoutSec := fs.Int("timeout", atoiDefault(os.Getenv(EnvTimeoutSec), 0), "Request timeout seconds (env "+EnvTimeoutSec+")")
	configPath := fs.String("config", "", "Path to YAML config file")
	fs.BoolVar(&g.Verbose, "v", false, "Verbose request/response logs (PAT never logged)")

	fs.Parse(args)

	if *configPath != "" {
		fc, err := loadFileConfig(*configPath)
		if err != nil {
			Panicf("config: %v", err)
		}
		if g.BaseURL == "" {
			g.BaseURL = fc.BaseURL
		}
		if g.PAT == "" {
			g.PAT = fc.PAT
		}
		if g.APIVersion == "" {
			g.APIVersion = fc.APIVersion
		}
		if *timeoutSec == 0 {
			*timeoutSec = fc.TimeoutSeconds
		}
	}
	if *timeoutSec == 0 {
		*timeoutSec = DefaultTimeoutSec
	}
	g.Timeout = time.Duration(*timeoutSec) * time.Second

	return g
}

// loadFileConfig reads and decodes a YAML config file.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// MustNonEmpty enforces required flag presence for better operator feedback.
func MustNonEmpty(val, name string) {
	if strings.TrimSpace(val) == "" {
		// Errors are printed by the command runner for consistent formatting.
		panic("missing required " + name)
	}
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return i
}
