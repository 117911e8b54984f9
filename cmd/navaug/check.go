package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mchmarny/navaug/pkg/links"
	"github.com/mchmarny/navaug/pkg/navigation"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the links file and report rejected rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aug, err := opts.augmenter(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			path := aug.Path()

			if !links.Exists(path) {
				fmt.Fprintf(out, "%s: not found, no custom links\n", path)
				return nil
			}

			rows, err := links.Read(path)
			if err != nil {
				return err
			}

			rejected := 0
			for i, row := range rows {
				rec, err := aug.Validator().Build(row)
				var rerr *navigation.RowError
				switch {
				case errors.As(err, &rerr):
					rejected++
					fmt.Fprintf(out, "%d: rejected (%s %q): %s\n", i+1, rerr.Field, rerr.Value, row)
				case err != nil:
					return err
				default:
					fmt.Fprintf(out, "%d: ok %s -> %s\n", i+1, rec.ID, rec.URL)
				}
			}

			fmt.Fprintf(out, "%d rows, %d accepted, %d rejected\n", len(rows), len(rows)-rejected, rejected)

			if rejected > 0 {
				return fmt.Errorf("%d of %d rows rejected", rejected, len(rows))
			}
			return nil
		},
	}
}
