package commands

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Build information, set via -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// Global flags
var (
	docPath string
	verbose bool
)

// Serve command flags - accessible here for flag binding
var (
	serveHost string
	servePort int
)

var rootCmd = &cobra.Command{
	Use:   "vellum",
	Short: "Vellum turns diagram documents into layout-ready data",
	Long: `Vellum reads statement-script documents describing diagrams (use-case
diagrams today), builds the in-memory model, and emits layout-ready data or
textual formats such as Graphviz DOT and Mermaid.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&docPath, "file", "f", "", "Path to the diagram document (required by most commands)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Serve command flags
	rootCmd.PersistentFlags().StringVar(&serveHost, "host", "", "Server host (default: VELLUM_HOST env var or localhost)")
	rootCmd.PersistentFlags().IntVar(&servePort, "port", 0, "Server port (default: VELLUM_PORT env var or 8080)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

func setupLogging(verbose bool) {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	slog.SetDefault(slog.New(handler))
}
