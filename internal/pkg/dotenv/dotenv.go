package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load подтягивает переменные из .env (если файл есть) и применяет флаги
// командной строки поверх окружения.
func Load(args []string) error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	flags := pflag.NewFlagSet("assignment-service", pflag.ContinueOnError)
	port := flags.StringP("port", "p", "", "Server port (overrides PORT environment variable)")
	logLevel := flags.String("log-level", "", "Log level (overrides LOG_LEVEL environment variable)")
	if err := flags.Parse(args); err != nil {
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
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
