package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load читает .env и применяет флаги командной строки поверх окружения.
// Переменные, уже заданные в окружении, .env не перезаписывает.
func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}
	return applyFlags(pflag.CommandLine, os.Args[1:])
}

// ApplyFlags - только флаги, без .env.
func ApplyFlags() error {
	return applyFlags(pflag.CommandLine, os.Args[1:])
}

func applyFlags(flags *pflag.FlagSet, args []string) error {
	overrides := map[string]*string{
		"PORT":           flags.String("port", "", "Server port (overrides PORT environment variable)"),
		"STORAGE_DRIVER": flags.String("storage", "", "Storage driver postgres|memory (overrides STORAGE_DRIVER)"),
		"LOG_LEVEL":      flags.String("log-level", "", "Log level (overrides LOG_LEVEL)"),
	}

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for env, value := range overrides {
		if *value == "" {
			continue
		}
		if err := os.Setenv(env, *value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", env, err)
		}
	}
	return nil
}
