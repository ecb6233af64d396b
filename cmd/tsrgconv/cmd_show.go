package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tsrgconv/jvm"
	"tsrgconv/tsrg"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <mappings.tsrg>",
		Short: "Print a TSRG mapping file with descriptors decoded to Java types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open mappings: %w", err)
			}
			defer input.Close()

			file, err := tsrg.Parse(input)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			for _, class := range file.Classes {
				fmt.Printf("%s -> %s\n", jvm.InternalToSourceName(class.Name), class.ObfName)
				for _, field := range class.Fields {
					fmt.Printf("    %s -> %s\n", field.Name, field.ObfName)
				}
				for _, method := range class.Methods {
					mt, ok := jvm.ParseMethodDescriptor(method.Descriptor)
					if !ok {
						return fmt.Errorf("bad method descriptor %q for %s.%s", method.Descriptor, class.Name, method.Name)
					}
					params := make([]string, len(mt.Parameters))
					for i, p := range mt.Parameters {
						params[i] = p.String()
					}
					fmt.Printf("    %s %s(%s) -> %s\n", mt.Return, method.Name, strings.Join(params, ", "), method.ObfName)
				}
			}
			return nil
		},
	}

	return cmd
}
