// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extractor-kit developer CLI. It
// checks documents produced by extractors without running a harness.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the extractor-kit CLI.
var rootCmd = &cobra.Command{
	Use:   "extractor-kit",
	Short: "Developer tools for extractor programs",
	Long: `extractor-kit helps authors of extractor programs check their wire output.

An extractor answers "--meta" with a descriptor {"name","types","cacheKey"} and
otherwise reads one JSON document on stdin and writes {"meta","caches","logs"}
to stdout. Pipe either document into validate, or split the logs out of an
output document with logs.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./extractor-kit.yaml or ~/.config/extractor-kit/extractor-kit.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("extractor-kit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "extractor-kit"))
		}
	}

	viper.SetEnvPrefix("EXTRACTOR_KIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
