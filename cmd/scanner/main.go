package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/SpaceLeam/spring-security-scanner/internal/models"
	"github.com/SpaceLeam/spring-security-scanner/internal/reporter"
	"github.com/SpaceLeam/spring-security-scanner/internal/scanner"
	"github.com/SpaceLeam/spring-security-scanner/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information
var version = "1.0.0"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "scanner <url>",
		Short: "Security testing for Spring Boot + Angular apps",
		Long: `Scans a web application for exposed actuator/docs endpoints, reflected XSS,
SQL injection, command injection and missing security headers.

For authorized testing only.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, v, args[0])
		},
	}

	rootCmd.Flags().String("token", "", "JWT/Bearer token for authenticated endpoints")
	rootCmd.Flags().StringP("output", "o", models.DefaultOutputFile, "Output file for results (JSON)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().Bool("insecure", false, "Skip TLS certificate verification")

	for _, name := range []string{"token", "output", "verbose", "insecure"} {
		_ = v.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}

	return rootCmd
}

func runScan(cmd *cobra.Command, v *viper.Viper, target string) error {
	config := models.ScanConfig{
		TargetURL:  target,
		Token:      v.GetString("token"),
		OutputFile: v.GetString("output"),
		Verbose:    v.GetBool("verbose"),
		Insecure:   v.GetBool("insecure"),
	}.WithDefaults()

	logger := utils.NewLoggerTo(cmd.ErrOrStderr(), config.Verbose)
	logger.Banner("Security Scanner v" + version)
	// A malformed target is scanned anyway; every request fails and the
	// result file comes out empty.
	if err := utils.ValidateTarget(target); err != nil {
		logger.Warn("%v", err)
	}
	engine := scanner.NewEngine(config, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting security scan for %s (scan %s)", target, engine.ScanID)

	result, err := engine.RunAll(ctx)
	if err == nil {
		err = reporter.GenerateJSONReport(result, config.OutputFile)
	}

	switch {
	case errors.Is(err, scanner.ErrInterrupted):
		logger.Info("Scan interrupted by user")
	case err != nil:
		logger.Error("Error during scan: %v", err)
	default:
		logger.Success("Scan completed. Results saved to %s", config.OutputFile)
		if err := reporter.PrintConsoleSummary(cmd.OutOrStdout(), target, result); err != nil {
			logger.Error("Error during scan: %v", err)
		}
	}

	// The outcome is reported through the log, not the exit status.
	return nil
}
