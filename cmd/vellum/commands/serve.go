package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vellum-dev/vellum/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the diagram HTTP API",
	Long: `The serve command starts an HTTP server exposing the diagram pipeline:
POST /api/render returns layout-ready data for a posted document,
POST /api/export returns a textual format (dot, mermaid), and
GET /api/types lists the registered diagram types.`,
	Run: func(cmd *cobra.Command, args []string) {
		// A .env file is optional; flags and real env vars win over it.
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file loaded", "error", err)
		}

		server := web.NewServer(serveAddress())
		if err := server.Start(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// serveAddress resolves host and port from flags, then environment, then
// defaults.
func serveAddress() string {
	host := serveHost
	if host == "" {
		host = os.Getenv("VELLUM_HOST")
	}
	if host == "" {
		host = "localhost"
	}

	port := servePort
	if port == 0 {
		if p, err := strconv.Atoi(os.Getenv("VELLUM_PORT")); err == nil {
			port = p
		}
	}
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}

func init() {
	AddCommand(serveCmd)
}
