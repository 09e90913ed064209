package main

import (
	"fmt"
	"os"

	"github.com/Shivanosh/ShivanoshConverter/internal/shiv"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file.shivanosh]",
	Short: "Inspect a container's header without decoding pixels",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	hdr, err := shiv.DecodeHeader(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	payloadSize := len(data) - shiv.HeaderSize
	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Dimensions:  %d x %d\n", hdr.Width, hdr.Height)
	fmt.Printf("Pixel bytes: %d (RGBA)\n", hdr.PixelBytes())
	fmt.Printf("Compressed:  %d bytes\n", payloadSize)
	if hdr.PixelBytes() > 0 {
		fmt.Printf("Ratio:       %.1f%%\n", float64(payloadSize)/float64(hdr.PixelBytes())*100)
	}
	return nil
}
