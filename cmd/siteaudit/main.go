package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/webatelier/siteaudit/internal/config"
	"github.com/webatelier/siteaudit/internal/logging"
	"github.com/webatelier/siteaudit/internal/models"
	"github.com/webatelier/siteaudit/internal/server"
	"github.com/webatelier/siteaudit/internal/store"
	"github.com/webatelier/siteaudit/pkg/audit"
	"github.com/webatelier/siteaudit/pkg/collector"
	"github.com/webatelier/siteaudit/pkg/recommend"
	"github.com/webatelier/siteaudit/pkg/report"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "siteaudit",
	Short: "SiteAudit - website audit and offer generator",
	Long: `SiteAudit scores a website across speed, mobile, security, SEO,
AI visibility and design, turns the weak spots into localized findings
and produces a package recommendation for the client.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var auditCmd = &cobra.Command{
	Use:   "audit [URL]",
	Short: "Audit a website and print the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		localeFlag, _ := cmd.Flags().GetString("locale")
		businessFlag, _ := cmd.Flags().GetString("business")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logging.New(cfg.Logging)

		engine := audit.NewEngine(newCollector(cfg, log), nil)
		result, err := engine.Run(cmd.Context(), url, models.BusinessType(businessFlag), models.Locale(localeFlag))
		if err != nil {
			return fmt.Errorf("audit failed: %w", err)
		}

		if save {
			st, err := store.Open(cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer st.Close()
			if err := st.SaveAudit(result); err != nil {
				return fmt.Errorf("failed to save audit: %w", err)
			}
			log.Info().Str("id", result.ID).Msg("audit saved")
		}

		rendered, err := report.Render(result, report.Format(format))
		if err != nil {
			return err
		}
		return writeOut(output, rendered)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [ID]",
	Short: "Render a stored audit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		result, err := st.GetAudit(args[0])
		if err != nil {
			return fmt.Errorf("failed to load audit: %w", err)
		}

		rendered, err := report.Render(result, report.Format(format))
		if err != nil {
			return err
		}
		return writeOut(output, rendered)
	},
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Print the localized package offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		localeFlag, _ := cmd.Flags().GetString("locale")
		table, _ := cmd.Flags().GetBool("table")

		locale := models.Locale(localeFlag)
		if !locale.Valid() {
			return fmt.Errorf("unknown locale %q", localeFlag)
		}

		if table {
			fmt.Println(recommend.ComparisonTable(locale))
			return nil
		}
		for _, pkg := range recommend.Packages {
			text, err := recommend.PackageText(pkg.ID, locale)
			if err != nil {
				return err
			}
			fmt.Println(text)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the audit HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		log := logging.New(cfg.Logging)

		st, err := store.Open(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		engine := audit.NewEngine(newCollector(cfg, log), nil)
		srv := server.New(engine, st, log)
		return srv.ListenAndServe(cfg.Server)
	},
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newCollector(cfg *config.Config, log zerolog.Logger) *collector.Collector {
	var pagespeed *collector.PageSpeedClient
	if cfg.PageSpeed.APIKey != "" || cfg.PageSpeed.Endpoint != "" {
		pagespeed = collector.NewPageSpeedClient(cfg.PageSpeed.APIKey, cfg.PageSpeed.Endpoint, cfg.PageSpeed.Timeout)
	}
	return collector.New(collector.Config{
		UserAgent:         cfg.Collector.UserAgent,
		Timeout:           cfg.Collector.Timeout,
		RequestsPerSecond: cfg.Collector.RequestsPerSecond,
	}, pagespeed, log)
}

func writeOut(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Report saved to %s\n", path)
	return nil
}

func init() {
	auditCmd.Flags().String("locale", "cs", "Output locale (cs, en, de, ru)")
	auditCmd.Flags().String("business", "massage", "Business type (massage, privat, escort)")
	auditCmd.Flags().String("format", "markdown", "Output format (json, markdown)")
	auditCmd.Flags().String("output", "", "Output file for the report")
	auditCmd.Flags().Bool("save", false, "Persist the audit to the local store")

	reportCmd.Flags().String("format", "markdown", "Output format (json, markdown)")
	reportCmd.Flags().String("output", "", "Output file for the report")

	packagesCmd.Flags().String("locale", "cs", "Output locale (cs, en, de, ru)")
	packagesCmd.Flags().Bool("table", false, "Print the comparison table instead of the offers")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().String("config", "", "Config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
