package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envFlags maps environment variables onto flag names
var envFlags = map[string]string{
	"WC_OUTPUT":    "output",
	"WC_BASE_URL":  "base-url",
	"WC_TIMEOUT":   "timeout",
	"WC_LOG_LEVEL": "log-level",
	"WC_MYSQL_DSN": "mysql-dsn",
}

// loadEnv reads the dotenv file (if present) and applies WC_* variables to
// flags the user did not set explicitly. Variables already in the process
// environment take precedence over the file.
func loadEnv(cmd *cobra.Command, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}

		// WC_OUTPUT names the historical dataset only
		if name == "output" && cmd.HasParent() {
			continue
		}

		flag := lookupFlag(cmd, name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}
