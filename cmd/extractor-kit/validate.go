// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extractor-kit/internal/contract"
	"github.com/pdiddy/extractor-kit/pkg/extractor"
	"github.com/pdiddy/extractor-kit/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an extractor document against the wire contract",
	Long: `Validate reads an output document ({"meta","caches","logs"}) from a file, or
from stdin when the file is omitted or "-", and reports contract problems.
With --descriptor the document is checked as a discovery response instead.

Exits non-zero when any error is found, or any warning with --strict. With
--format json or yaml the normalized document is printed after the report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	descriptor, _ := cmd.Flags().GetBool("descriptor")
	cfg := kitConfig()

	source, raw, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	var problems []contract.Problem
	if descriptor {
		problems = contract.ValidateDescriptor(raw)
	} else {
		problems = contract.ValidateOutput(raw)
	}

	contract.Report(cmd.ErrOrStderr(), source, problems)
	if contract.HasErrors(problems, cfg.Strict) {
		return fmt.Errorf("%s does not satisfy the extractor contract", source)
	}

	var doc any
	if descriptor {
		doc, err = extractor.DecodeDescriptor(bytes.NewReader(raw))
	} else {
		doc, err = extractor.DecodeOutput(bytes.NewReader(raw))
	}
	if err != nil {
		return err
	}
	return contract.Render(cmd.OutOrStdout(), doc, cfg.Format)
}

// kitConfig gathers settings from flags, the config file, and the environment.
func kitConfig() types.KitConfig {
	return types.KitConfig{
		Format: types.OutputFormat(viper.GetString("format")),
		Strict: viper.GetBool("strict"),
	}
}

// readSource returns a display name and the contents of the named file, or
// of the command's stdin for no argument or "-".
func readSource(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "-", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], data, nil
}

func init() {
	validateCmd.Flags().Bool("descriptor", false, "validate a discovery response instead of an output document")
	validateCmd.Flags().String("format", "", "print the normalized document: json or yaml")
	validateCmd.Flags().Bool("strict", false, "treat warnings as errors")

	viper.BindPFlag("format", validateCmd.Flags().Lookup("format"))
	viper.BindPFlag("strict", validateCmd.Flags().Lookup("strict"))

	rootCmd.AddCommand(validateCmd)
}
