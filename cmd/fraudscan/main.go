package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtsc-team2/fraudscan/internal/config"
	"github.com/dtsc-team2/fraudscan/internal/database"
	"github.com/dtsc-team2/fraudscan/internal/discover"
	"github.com/dtsc-team2/fraudscan/internal/export"
	"github.com/dtsc-team2/fraudscan/internal/pipeline"
	"github.com/dtsc-team2/fraudscan/internal/taxonomy"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "fraudscan",
	Short:   "Fraud bulletin keyword scanner",
	Long:    "fraudscan discovers quarterly fraud-alert bulletins, extracts their text, and classifies sentences against a fixed fraud taxonomy into a structured dataset.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fraudscan", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/fraudscan/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to configure bulletin index pages and feeds.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}

		fmt.Println("Alerts:")
		fmt.Printf("  Stored: %d\n", stats.TotalAlerts)
		fmt.Printf("  Periods: %d\n", stats.Periods)
		if stats.TotalAlerts > 0 {
			fmt.Printf("  Date range: %s .. %s\n", stats.EarliestDate, stats.LatestDate)
		}
		fmt.Printf("  Categories seen: %d\n", stats.CategoriesSeen)
		return nil
	},
}

// --- discover command ---

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List documents discoverable from the configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher := discover.NewFetcher(httpClient())
		ctx := context.Background()

		total := 0
		for _, src := range cfg.Sources.Pages {
			refs := fetcher.Discover(ctx, src.URL)
			total += len(refs)
			fmt.Printf("\n%s (%d documents):\n", src.Period, len(refs))
			printRefs(refs)
		}
		for _, src := range cfg.Sources.Feeds {
			refs := fetcher.DiscoverFeed(ctx, src.URL)
			total += len(refs)
			fmt.Printf("\n%s (%d documents):\n", src.Name, len(refs))
			printRefs(refs)
		}

		if total == 0 {
			return fmt.Errorf("no documents discovered across any source")
		}
		fmt.Printf("\nTotal: %d documents\n", total)
		return nil
	},
}

func printRefs(refs []discover.DocumentReference) {
	for _, ref := range refs {
		date := "no date"
		if ref.Date != nil {
			date = ref.Date.Format("2006-01-02")
		}
		fmt.Printf("  [%s] %s\n", date, ref.Title)
	}
}

// --- run command ---

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: discover -> download -> extract -> classify -> store",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		catalog := taxonomy.New()
		pipe := pipeline.New(catalog, httpClient(), cfg.GetCacheDir())

		var sources []pipeline.Source
		for _, p := range cfg.Sources.Pages {
			sources = append(sources, pipeline.Source{Label: p.Period, URL: p.URL})
		}
		for _, f := range cfg.Sources.Feeds {
			sources = append(sources, pipeline.Source{Label: f.Name, URL: f.URL, Feed: true})
		}

		result, err := pipe.Run(context.Background(), sources)
		if err != nil {
			return err
		}

		stored, err := db.UpsertAlerts(result.Records)
		if err != nil {
			log.Printf("Some records failed to store: %v", err)
		}

		fmt.Println("\nPipeline complete:")
		fmt.Printf("  Discovered: %d\n", result.Discovered)
		fmt.Printf("  Downloaded: %d\n", result.Downloaded)
		fmt.Printf("  Skipped (fetch failed): %d\n", result.SkippedFetch)
		fmt.Printf("  Skipped (no text): %d\n", result.SkippedEmpty)
		fmt.Printf("  Skipped (no date): %d\n", result.SkippedNoDate)
		fmt.Printf("  Emitted: %d\n", result.Emitted)
		fmt.Printf("  Stored: %d\n", stored)
		return nil
	},
}

// --- export command ---

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored alerts to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		alerts, err := db.GetAlerts()
		if err != nil {
			return fmt.Errorf("loading alerts: %w", err)
		}
		if len(alerts) == 0 {
			return fmt.Errorf("nothing to export; run 'fraudscan run' first")
		}

		if err := export.WriteCSV(alerts, exportOut); err != nil {
			return err
		}
		fmt.Printf("Exported %d alerts to %s\n", len(alerts), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "pdf_summaries.csv", "Output CSV path")
}

func httpClient() *http.Client {
	return &http.Client{Timeout: time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second}
}

func openDB() (*database.DB, error) {
	dataDir := cfg.GetDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return database.Open(filepath.Join(dataDir, "fraudscan.db"))
}
