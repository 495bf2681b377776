package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pijn/randcore/internal/service"
)

// newStringCommand creates the "string" subcommand.
//
// No character class is enabled by default: the service rejects an empty
// selection rather than silently substituting a charset, so the caller
// always knows exactly which classes were in play.
func newStringCommand(svc **service.Service) *cobra.Command {
	var (
		digits    bool
		lowercase bool
		uppercase bool
		special   bool
		length    int
	)

	cmd := &cobra.Command{
		Use:   "string",
		Short: "Generate a random string from the enabled character classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := (*svc).GenerateRandomString(digits, lowercase, uppercase, special, length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&digits, "digits", "d", false, "include digits 0-9")
	cmd.Flags().BoolVarP(&lowercase, "lowercase", "l", false, "include lowercase letters a-z")
	cmd.Flags().BoolVarP(&uppercase, "uppercase", "u", false, "include uppercase letters A-Z")
	cmd.Flags().BoolVarP(&special, "special", "s", false, "include special characters !@#$%^&*-_=+~><?/")
	cmd.Flags().IntVarP(&length, "length", "n", 16, "length of the generated string")
	return cmd
}
