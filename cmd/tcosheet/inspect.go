package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tcosheet-go/pkg/tcosheet"
	"github.com/ukaji3/tcosheet-go/pkg/tcosheet/output"
)

var inspectDst output.Destinations

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the values, formats and print areas of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVarP(&inspectDst.Path, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&inspectDst.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&inspectDst.SheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&inspectDst.PrintAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", args[0])
	}
	wb, err := tcosheet.Inspect(args[0])
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}
	return output.Write(wb, cmd.OutOrStdout(), inspectDst)
}
