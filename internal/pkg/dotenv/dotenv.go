package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the given .env files (".env" when none are given) without
// overriding variables already set in the environment.
func Load(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// OverridePort applies the -port command line flag on top of PORT.
func OverridePort(args []string) error {
	flags := flag.NewFlagSet("dispatch", flag.ContinueOnError)
	portFlag := flags.String("port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *portFlag != "" {
		err := os.Setenv("PORT", *portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
