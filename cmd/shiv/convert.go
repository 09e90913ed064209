package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shivanosh/ShivanoshConverter/internal/fileio"
	"github.com/Shivanosh/ShivanoshConverter/internal/pipeline"
	"github.com/Shivanosh/ShivanoshConverter/internal/shiv"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [images...]",
	Short: "Convert images to .shivanosh containers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("out-dir", "", "Write outputs to this directory instead of next to each input")
	rootCmd.AddCommand(convertCmd)
}

// outputPath replaces the input's extension with .shivanosh, optionally
// relocating it into outDir.
func outputPath(inputPath, outDir string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + shiv.Extension
	if outDir == "" {
		return base
	}
	return filepath.Join(outDir, filepath.Base(base))
}

func runConvert(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")

	for _, inputPath := range args {
		inputData, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", inputPath, err)
		}

		result, err := pipeline.Convert(inputData)
		if err != nil {
			return fmt.Errorf("converting %s: %w", inputPath, err)
		}

		outPath := outputPath(inputPath, outDir)
		if err := fileio.WriteFileAtomic(outPath, result.Data); err != nil {
			return err
		}

		fmt.Printf("Converted %s (%s %dx%d) → %s (%d bytes)\n",
			inputPath, result.SrcFormat, result.Width, result.Height,
			outPath, len(result.Data))
	}

	return nil
}
