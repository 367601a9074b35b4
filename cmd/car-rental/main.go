package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"car-rental/internal/config"
	"car-rental/internal/db"
	"car-rental/internal/httpserver"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "car-rental",
		Short: "Car rental management backend",
	}

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			conn, err := db.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("DB connection failed: %w", err)
			}

			if cfg.Database.Sync {
				if err := db.Sync(conn); err != nil {
					return fmt.Errorf("schema sync failed: %w", err)
				}
			}

			srv := httpserver.New(conn, cfg.Booking)
			addr := ":" + cfg.Server.Port
			log.Printf("Server running on http://localhost%s", addr)
			log.Printf("Docs available at http://localhost%s/docs", addr)
			return http.ListenAndServe(addr, srv.Router())
		},
	}
}

func migrateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			conn, err := db.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("DB connection failed: %w", err)
			}

			return db.RunMigrations(conn, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding versioned .sql scripts")
	return cmd
}

func seedCmd() *cobra.Command {
	var fixture string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the car fixture into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			conn, err := db.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("DB connection failed: %w", err)
			}

			if cfg.Database.Sync {
				if err := db.Sync(conn); err != nil {
					return fmt.Errorf("schema sync failed: %w", err)
				}
			}

			return db.SeedCars(conn, fixture)
		},
	}
	cmd.Flags().StringVar(&fixture, "fixture", "data/cars.json", "path to the car fixture file")
	return cmd
}
