package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"tsrgconv/tsrg"
)

var log = commonlog.GetLogger("tsrgconv")

func newConvertCmd() *cobra.Command {
	var outputPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "convert <mappings.txt>",
		Short: "Convert a ProGuard mapping file to TSRG",
		Long: `Convert a ProGuard-format deobfuscation mapping to the TSRG grammar.

Member types are rewritten as JVM descriptors, with class names replaced
by their obfuscated form whenever the class is itself part of the mapping.

The output is written only after the whole input converts; a parse error
leaves no partial file behind. If the output file already exists the
command does nothing unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			out := outputPath
			if out == "" {
				out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".tsrg"
			}

			if out != "-" && !force {
				if _, err := os.Stat(out); err == nil {
					log.Noticef("%s already exists, not converting again", out)
					return nil
				}
			}

			input, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open mappings: %w", err)
			}
			defer input.Close()

			var buf bytes.Buffer
			if err := tsrg.Convert(input, &buf); err != nil {
				return fmt.Errorf("convert %s: %w", inputPath, err)
			}

			if out == "-" {
				_, err := os.Stdout.Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Infof("converted %s to %s", inputPath, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default: input path with .tsrg extension, - for stdout)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "convert even if the output file already exists")

	return cmd
}
