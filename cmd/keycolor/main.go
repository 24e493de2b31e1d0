package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	keycolor "github.com/gcslaoli/keycolor-go"
	"github.com/spf13/cobra"
)

// go run ./cmd/keycolor logo.png logo_keyed.png
// go run ./cmd/keycolor --mode clear --color '#ffffff' scan.jpg scan_cutout.png
// go run ./cmd/keycolor --config key.toml --tolerance 8 sprite.bmp sprite.png
// go run ./cmd/keycolor --out-base64 logo.png
// go run ./cmd/keycolor --in-base64 "data:image/png;base64,iVBOR..." logo_keyed.png
// go run ./cmd/keycolor identify logo.png

const (
	usageLine         = "Usage: keycolor input_image.png output_image.png"
	identifyUsageLine = "Usage: keycolor identify input_image.png"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitDecode  = 3
	exitEncode  = 4
)

// usageError marks a malformed invocation. A nil err means only the usage line
// is printed.
type usageError struct {
	err   error
	usage string
}

func (e *usageError) Error() string {
	if e.err == nil {
		return "invalid usage"
	}
	return e.err.Error()
}

// optionError marks a flag or config value that could not be turned into a key.
type optionError struct {
	err error
}

func (e *optionError) Error() string { return e.err.Error() }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	return report(stdout, cmd.Execute())
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "keycolor <input> <output>",
		Short:         "Keep one key color in an image and make every other pixel transparent",
		Args:          recolorArgs,
		RunE:          runRecolor,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err, usage: usageFor(c)}
	})

	flags := cmd.PersistentFlags()
	flags.StringP("color", "c", keycolor.FormatColor(keycolor.DefaultTarget), "Key color as #rrggbb")
	flags.IntP("tolerance", "t", 0, "Largest per-channel difference that still matches (0-255)")
	flags.StringP("mode", "m", keycolor.KeepTarget.String(), "keep: keep the key color, clear everything else; clear: the reverse")
	flags.String("config", "", "TOML file with target, tolerance and mode")

	cmd.Flags().String("in-base64", "", "Base64 image input (optionally data URL) instead of an input path")
	cmd.Flags().Bool("out-base64", false, "Write the result as base64 PNG to stdout instead of an output path")

	cmd.AddCommand(newIdentifyCmd())
	return cmd
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{usage: usage}
		}
		return nil
	}
}

// recolorArgs expects one positional argument for each side that is not
// supplied as base64.
func recolorArgs(cmd *cobra.Command, args []string) error {
	want := 2
	if in, _ := cmd.Flags().GetString("in-base64"); in != "" {
		want--
	}
	if out, _ := cmd.Flags().GetBool("out-base64"); out {
		want--
	}
	return exactArgs(want, usageLine)(cmd, args)
}

func usageFor(cmd *cobra.Command) string {
	if cmd.Name() == "identify" {
		return identifyUsageLine
	}
	return usageLine
}

func runRecolor(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(cmd)
	if err != nil {
		return err
	}

	inBase64, _ := cmd.Flags().GetString("in-base64")
	outBase64, _ := cmd.Flags().GetBool("out-base64")
	out := cmd.OutOrStdout()

	switch {
	case inBase64 == "" && !outBase64:
		inputPath, outputPath := args[0], args[1]
		if err := keycolor.RecolorFile(inputPath, outputPath, key); err != nil {
			return err
		}
		fmt.Fprintf(out, "Image successfully processed and saved as %s\n", outputPath)
		return nil
	case inBase64 != "" && outBase64:
		encoded, err := keycolor.RecolorBase64(inBase64, key)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, encoded)
		return nil
	}

	var img image.Image
	if inBase64 != "" {
		img, _, err = keycolor.DecodeBase64Image(inBase64)
		if err != nil {
			return &keycolor.DecodeError{Path: "base64 input", Err: err}
		}
	} else {
		img, _, err = keycolor.LoadImage(args[0])
		if err != nil {
			return err
		}
		args = args[1:]
	}

	recolored, err := keycolor.NewRecolorer(key).Recolor(img)
	if err != nil {
		return &keycolor.DecodeError{Err: err}
	}

	if outBase64 {
		encoded, err := keycolor.EncodePNGToBase64(recolored)
		if err != nil {
			return &keycolor.EncodeError{Path: "base64 output", Err: err}
		}
		fmt.Fprintln(out, encoded)
		return nil
	}

	outputPath := args[0]
	if err := keycolor.SaveImage(recolored, outputPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "Image successfully processed and saved as %s\n", outputPath)
	return nil
}

// resolveKey builds the key from --config, then lets explicitly set flags
// override individual fields.
func resolveKey(cmd *cobra.Command) (keycolor.Key, error) {
	flags := cmd.Flags()

	var cfg keycolor.Config
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := keycolor.LoadConfig(path)
		if err != nil {
			return keycolor.Key{}, &optionError{err: err}
		}
		cfg = loaded
	}

	if flags.Changed("color") {
		cfg.Target, _ = flags.GetString("color")
	}
	if flags.Changed("tolerance") {
		tol, _ := flags.GetInt("tolerance")
		cfg.Tolerance = &tol
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}

	key, err := cfg.Key()
	if err != nil {
		return keycolor.Key{}, &optionError{err: err}
	}
	return key, nil
}

// report prints the outcome of a command and maps it to an exit code.
func report(w io.Writer, err error) int {
	if err == nil {
		return exitOK
	}

	var (
		usageErr  *usageError
		optionErr *optionError
		decodeErr *keycolor.DecodeError
		encodeErr *keycolor.EncodeError
	)

	switch {
	case errors.As(err, &usageErr):
		if usageErr.err != nil {
			fmt.Fprintln(w, usageErr.err)
		}
		usage := usageErr.usage
		if usage == "" {
			usage = usageLine
		}
		fmt.Fprintln(w, usage)
		return exitUsage
	case errors.As(err, &optionErr):
		fmt.Fprintf(w, "Error processing image: %v\n", err)
		return exitUsage
	case errors.As(err, &decodeErr):
		fmt.Fprintf(w, "Error processing image: %v\n", err)
		return exitDecode
	case errors.As(err, &encodeErr):
		fmt.Fprintf(w, "Error processing image: %v\n", err)
		return exitEncode
	default:
		fmt.Fprintf(w, "Error processing image: %v\n", err)
		return exitFailure
	}
}
