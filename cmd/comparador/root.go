package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/lewtec/comparador/internal/repository"
	"github.com/lewtec/comparador/server"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "comparador",
	Short: "Image sameness service",
	Long: strings.TrimSpace(`
Serves an HTTP API that decides whether two images are "the same" under
four notions of sameness: exact digest, normalized digest, perceptual
hash and content correlation.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := openDatabase(config.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		app := &server.App{
			Config: config,
			Store:  repository.NewImageRepository(db),
		}

		log.Printf("Database: %s", config.DatabasePath)
		log.Printf("Default comparison method: %s", config.DefaultMethod)
		log.Printf("Allowed extensions: %s", strings.Join(config.AllowedExtensions, ", "))
		log.Printf("Starting server on: %s", config.Addr)

		return http.ListenAndServe(config.Addr, app.GetHTTPHandler())
	},
}

// loadConfig builds the effective configuration: file if given, defaults
// otherwise, with flags overriding either.
func loadConfig(cmd *cobra.Command) (*server.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")

	var config *server.Config
	if configFile != "" {
		loaded, err := server.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Printf("Configuration: %s", configFile)
		config = loaded
	} else {
		config = server.DefaultConfig()
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		config.Addr = addr
	}
	if database, _ := cmd.Flags().GetString("database"); database != "" {
		config.DatabasePath = database
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// openDatabase opens the image store and brings its schema up to date.
func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := repository.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("Error executing command: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringP("database", "d", "", "Database file path (overrides config)")
	rootCmd.Flags().StringP("addr", "a", "", "Address to bind the webserver (overrides config)")
}
