package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads env files (".env" when none given). Variables already present
// in the process environment win.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// ApplyFlags parses command line overrides and exports them into the
// environment so config.Load sees them.
func ApplyFlags(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	port := fs.String("port", "", "server port (overrides PORT)")
	logLevel := fs.String("log-level", "", "log level (overrides LOG_LEVEL)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":      *port,
		"LOG_LEVEL": *logLevel,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}
