package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/p5chmitz/mdtree/internal/config"
	"github.com/p5chmitz/mdtree/internal/scan"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "mdtree [path]",
	Short: "Print a box-drawn table of contents for markdown documents",
	Long: `mdtree walks a directory (or takes a single file), extracts each
document's headings, and prints an indented outline per document. Level gaps
in the source are bridged with [] placeholder entries so indentation always
matches heading depth.`,
	Example: `  mdtree docs/
  mdtree --level 1 README.md
  mdtree -l 2 ./src/content`,
	Args: cobra.MaximumNArgs(1),
	Run:  runOutline,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().IntP("level", "l", 0,
		"exclude headings at and above the specified level;\n-l 1 skips H1s, -l 2 skips H1s and H2s")

	rootCmd.AddCommand(mcpCmd)
}

// setupLogging sends logs to stderr so outlines on stdout stay clean.
func setupLogging() {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

func runOutline(cmd *cobra.Command, args []string) {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if cmd.Flags().Changed("level") {
		cfg.Level, _ = cmd.Flags().GetInt("level")
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	results, err := scan.Scan(context.Background(), path, scan.Options{
		Level:      cfg.Level,
		Extensions: cfg.Extensions,
		Workers:    cfg.Workers,
		Style:      cfg.RenderStyle(),
	})
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}

	for _, r := range results {
		fmt.Println(r.Path)
		if r.Err != nil {
			slog.Error("skipping document", "path", r.Path, "error", r.Err)
			continue
		}
		fmt.Println(r.Outline)
	}
}
