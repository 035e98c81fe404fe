package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vellum-dev/vellum/loader"
	"github.com/vellum-dev/vellum/viz"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds a diagram document into layout-ready output",
	Long: `The build command reads a statement-script document, replays its
statements against the diagram store, and writes the result in the chosen
format:
  json:    the layout-ready data consumed by a layout engine (default)
  dot:     Graphviz DOT, layout delegated to Graphviz
  mermaid: Mermaid flowchart notation, layout delegated to Mermaid`,
	Run: func(cmd *cobra.Command, args []string) {
		outputFile, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		watch, _ := cmd.Flags().GetBool("watch")

		if docPath == "" {
			fmt.Fprintln(os.Stderr, "Error: document path must be specified with -f or --file.")
			os.Exit(1)
		}

		if watch {
			runWatch(docPath, outputFile, format)
			return
		}
		if err := buildOnce(docPath, outputFile, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// buildOnce runs the whole pipeline for one document: load, build, flatten,
// emit, write.
func buildOnce(path, outputFile, format string) error {
	db, err := loader.BuildFile(path)
	if err != nil {
		return err
	}
	data := db.Data()

	var content string
	switch format {
	case "json":
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding layout data: %w", err)
		}
		content = string(encoded) + "\n"
	default:
		gen, err := viz.ForFormat(format)
		if err != nil {
			return err
		}
		content, err = gen.Generate(data)
		if err != nil {
			return err
		}
	}

	writeOutput(outputFile, content)
	return nil
}

// runWatch rebuilds on every document change until interrupted. A failing
// rebuild is logged and the watch continues, so a typo mid-edit does not
// kill the session.
func runWatch(path, outputFile, format string) {
	rebuild := func() {
		if err := buildOnce(path, outputFile, format); err != nil {
			slog.Error("rebuild failed", "path", path, "error", err)
			return
		}
		slog.Info("rebuilt", "path", path)
	}
	rebuild()

	w, err := loader.NewWatcher(path, rebuild)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("watching for changes", "path", path)
	w.Start(ctx)
	<-ctx.Done()
	w.Stop()
}

func writeOutput(outputFile, content string) {
	if content == "" {
		return // Nothing to write
	}
	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(content), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", outputFile)
	} else {
		fmt.Print(content)
	}
}

func init() {
	AddCommand(buildCmd)
	buildCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	buildCmd.Flags().String("format", "json", "Output format: json, dot or mermaid")
	buildCmd.Flags().Bool("watch", false, "Rebuild whenever the document changes")
}
