package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"statfn/internal/funcs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "список зарегистрированных функций",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, s := range funcs.New(nil, nil).Specs() {
			fmt.Fprintf(tw, "%s\t%s\n", s.Signature(), s.Doc)
		}
		return tw.Flush()
	},
}
