package main

import (
	"fmt"
	"os"

	"github.com/kauhanhernandes/portfolio/internal/logging"
	"github.com/kauhanhernandes/portfolio/internal/version"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	logConfig := logging.DefaultConfig()
	logConfig.Level = logging.LevelWarn
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		logConfig.Level = level
	}
	logging.Configure(logConfig)
	logger = logging.GetLogger()
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site tools",
	Long: `Command line companion of the portfolio site.
Prints the site content and sends contact messages through the configured provider.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(contactCmd)
}

func main() {
	defer func() {
		if logger != nil {
			logger.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
