package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pijn/randcore/internal/service"
)

// newChooseCommand creates the "choose" subcommand. Items come from the
// argument list, or from a file or stdin (one item per line) when no
// arguments are given.
func newChooseCommand(svc **service.Service) *cobra.Command {
	var (
		count int
		input string
	)

	cmd := &cobra.Command{
		Use:   "choose [item ...]",
		Short: "Select items uniformly at random, without replacement",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if len(items) == 0 {
				loaded, err := readItems(input, cmd.InOrStdin())
				if err != nil {
					return err
				}
				items = loaded
			}

			selected, err := (*svc).GenerateRandomChoice(items, count)
			if err != nil {
				return err
			}
			for _, item := range selected {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of items to select")
	cmd.Flags().StringVarP(&input, "input", "i", "", "file with one item per line (stdin when omitted)")
	return cmd
}

// readItems loads items one per line from filename, or from fallback
// when filename is empty. Lines containing only whitespace are skipped;
// each kept line is trimmed.
func readItems(filename string, fallback io.Reader) ([]string, error) {
	var r io.Reader = fallback
	if filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("can't read item file: %w", err)
		}
		defer file.Close()
		r = file
	}

	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading items: %w", err)
	}

	return items, nil
}
