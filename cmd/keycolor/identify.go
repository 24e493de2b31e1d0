package main

import (
	"fmt"

	keycolor "github.com/gcslaoli/keycolor-go"
	"github.com/spf13/cobra"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <image>",
		Short: "Inspect an image and count the pixels matching the key",
		Args:  exactArgs(1, identifyUsageLine),
		RunE:  runIdentify,
	}
}

func runIdentify(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	img, format, err := keycolor.LoadImage(path)
	if err != nil {
		return err
	}

	info, err := keycolor.Detect(img, key)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", path, err)
	}

	alpha := "no"
	if info.HasAlpha {
		alpha = "yes"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Format:     %s\n", format)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Alpha:      %s\n", alpha)
	fmt.Fprintf(out, "Key:        %s\n", key)
	fmt.Fprintf(out, "Matched:    %d of %d pixels (%.1f%%)\n", info.Matched, info.Pixels, info.Coverage()*100)
	return nil
}
