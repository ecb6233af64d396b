package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsrgconv/proguard"
)

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes <mappings.txt>",
		Short: "List the class mappings in a ProGuard mapping file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open mappings: %w", err)
			}
			defer input.Close()

			sc := bufio.NewScanner(input)
			lineNo := 0
			for sc.Scan() {
				lineNo++
				line := sc.Text()
				if proguard.Skip(line) || proguard.IsMember(line) {
					continue
				}
				entry, err := proguard.ParseLine(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				class := entry.(proguard.ClassEntry)
				fmt.Printf("%s -> %s\n", class.Name, class.ObfName)
			}
			return sc.Err()
		},
	}

	return cmd
}
