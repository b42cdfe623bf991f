package main

import (
	"report-srv/internal/dashboard"
	"report-srv/pkg/log"
	"report-srv/pkg/reportsrv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyAPI     = "api"
	keyLogFile = "log_file"

	defaultTUILogFile = "report-dashboard.log"
)

// settings resolves flags and REPORT_API / REPORT_LOG_FILE from the environment.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Progress report dashboard",
	Long:  `Terminal dashboard and commands for the progress report API.`,
	Args:  cobra.NoArgs,
	RunE:  runTUI,

	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("api", reportsrv.DefaultBaseURL, "report API base URL (env REPORT_API)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr (env REPORT_LOG_FILE)")

	_ = settings.BindPFlag(keyAPI, rootCmd.PersistentFlags().Lookup("api"))
	_ = settings.BindPFlag(keyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	settings.SetEnvPrefix("report")
	settings.AutomaticEnv()
}

func Execute() error {
	return rootCmd.Execute()
}

func newClient() reportsrv.IReport {
	return reportsrv.New(reportsrv.ReportConfig{
		BaseURL: settings.GetString(keyAPI),
	})
}

// newLogger logs to the configured file, or to fallback when none is set.
// One-shot commands only print warnings and errors.
func newLogger(fallback, level string) log.Logger {
	path := settings.GetString(keyLogFile)
	if path == "" {
		path = fallback
	}
	return log.Init(log.ZapConfig{
		Level:      level,
		Mode:       log.ModeDevelopment,
		Encoding:   log.EncodingConsole,
		OutputPath: path,
	})
}

func newDashboard(l log.Logger) dashboard.Dashboard {
	return dashboard.New(l, newClient())
}
