package main

import (
	"errors"
	"os"
	"strings"
	"time"

	"paris-coordcheck/internal/config"
	"paris-coordcheck/internal/geo"
	"paris-coordcheck/internal/report"
	"paris-coordcheck/internal/repository"
	"paris-coordcheck/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, repository.ErrDirectoryNotFound) {
			log.Fatal().Err(err).Msg("nothing to analyze")
		}
		log.Fatal().Err(err).Msg("coordinate check failed")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coordcheck",
		Short: "Audit place coordinates of the Paris district files",
		Long: `coordcheck reads one JSON file per arrondissement and reports places with
missing, duplicated, out of bounds or suspicious coordinates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "./configs", "directory holding coordcheck.yaml")
	flags.String("dir", "data/arrondissements", "directory of district JSON files")
	flags.Int("precision", geo.DefaultPrecision, "decimal digits used to group identical coordinates")
	flags.StringSlice("target", nil, "place name to spot-check (repeatable)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(&cobra.Command{
		Use:   "analyze",
		Short: "Full report: duplicates, district centers, missing, out of bounds, suspicious, lookups",
		Args:  cobra.NoArgs,
		RunE:  runAnalyze,
	})
	root.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Quick counters with recommendations",
		Args:  cobra.NoArgs,
		RunE:  runSummary,
	})

	return root
}

func newAuditService(cmd *cobra.Command) (*service.AuditService, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	setupLogger(cfg.LogLevel)

	log.Debug().
		Str("dir", cfg.DataDir).
		Int("precision", cfg.Precision).
		Strs("targets", cfg.Targets).
		Msg("configuration loaded")

	repo := repository.NewRepository(afero.NewOsFs(), cfg.DataDir)
	bound := geo.NewBound(cfg.Bounds.LatMin, cfg.Bounds.LatMax, cfg.Bounds.LonMin, cfg.Bounds.LonMax)
	analyzer := service.NewAnalyzer(bound, cfg.Precision)

	return service.NewAuditService(repo, analyzer, cfg.Targets), nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	svc, err := newAuditService(cmd)
	if err != nil {
		return err
	}

	audit, err := svc.Analyze()
	if err != nil {
		return err
	}
	if audit.Files == 0 {
		log.Warn().Msg("no district file found")
		return nil
	}

	log.Info().Int("files", audit.Files).Int("places", audit.Result.Total).Msg("analysis complete")
	return report.NewWriter(cmd.OutOrStdout()).WriteAnalysis(audit)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	svc, err := newAuditService(cmd)
	if err != nil {
		return err
	}

	quick, err := svc.Summary()
	if err != nil {
		return err
	}
	if quick.Files == 0 {
		log.Warn().Msg("no district file found")
		return nil
	}

	return report.NewWriter(cmd.OutOrStdout()).WriteSummary(quick)
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
