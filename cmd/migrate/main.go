package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/SscSPs/comandas_backend/migrations"
	"github.com/SscSPs/comandas_backend/pkg/database"
	"github.com/SscSPs/comandas_backend/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load()

	v := viper.New()
	flags := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flags.String("direction", "up", "one of up, down, steps, version, force, list")
	flags.Int("steps", 0, "number of migrations for --direction=steps (negative reverts)")
	flags.Int("version", -1, "target version for --direction=force")
	flags.String("database-url", "", "overrides PGSQL_URL")
	flags.String("log-level", "info", "log level")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.AutomaticEnv()

	databaseURL := v.GetString("database-url")
	if databaseURL == "" {
		databaseURL = v.GetString("PGSQL_URL")
	}
	if databaseURL == "" {
		return errors.New("PGSQL_URL or --database-url is required")
	}

	l := logger.New(logger.Config{Level: v.GetString("log-level")})
	ctx := l.WithContext(context.Background())

	direction := v.GetString("direction")
	if direction == "list" {
		files, err := database.ListMigrations(migrations.FS)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Printf("%d\t%s\n", f.Version, f.Identifier)
		}
		return nil
	}

	mg, err := database.NewMigrator(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mg.Close(); cerr != nil {
			l.Error().Err(cerr).Msg("Failed to close migrator")
		}
	}()

	switch direction {
	case "up":
		return mg.Up()
	case "down":
		return mg.Down()
	case "steps":
		n := v.GetInt("steps")
		if n == 0 {
			return errors.New("--steps must be non-zero")
		}
		return mg.Steps(n)
	case "force":
		target := v.GetInt("version")
		if target < 0 {
			return errors.New("--version is required for force")
		}
		return mg.Force(target)
	case "version":
		ver, dirty, err := mg.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", ver, dirty)
		return nil
	default:
		return fmt.Errorf("unknown direction %q", direction)
	}
}
