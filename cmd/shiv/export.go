package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shivanosh/ShivanoshConverter/internal/fileio"
	"github.com/Shivanosh/ShivanoshConverter/internal/pipeline"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.shivanosh]",
	Short: "Decode a .shivanosh container to PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output PNG path (default: input with .png extension)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".png"
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	pngData, err := pipeline.Export(data)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", inputPath, err)
	}

	if err := fileio.WriteFileAtomic(outPath, pngData); err != nil {
		return err
	}

	fmt.Printf("Exported %s → %s (%d bytes)\n", inputPath, outPath, len(pngData))
	return nil
}
