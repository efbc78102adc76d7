// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/extractor-kit/pkg/extractor"
)

var logsCmd = &cobra.Command{
	Use:   "logs [file]",
	Short: "Split the log lines out of an output document",
	Long: `Logs prints the log lines of an output document to stderr, one per line,
and writes the remaining {"meta","caches"} data as JSON to stdout. This is
how a harness running in debug mode surfaces extractor diagnostics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func runLogs(cmd *cobra.Command, args []string) error {
	_, raw, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	out, err := extractor.DecodeOutput(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	logs, data := out.SplitLogs()
	if len(logs) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), strings.Join(logs, "\n"))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(data)
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
