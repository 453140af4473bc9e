package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/de-tools/decline-curve/pkg/server"
	"github.com/de-tools/decline-curve/pkg/services/config"
	"github.com/de-tools/decline-curve/pkg/services/wells"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the forecast web server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.wellscfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the wells configuration file (default is $HOME/.wellscfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to open wells configuration: %w", err)
	}

	explorer := wells.NewExplorer(registry)

	logger.Info().Msgf("Wells configuration found at `%s` successfully loaded.", cfgPath)
	names, _ := registry.GetWells(ctx)
	for _, name := range names {
		logger.Info().Msgf("Well: `%s`", name)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Wells:  explorer,
			Logger: logger,
		},
	})

	return api.Start()
}
