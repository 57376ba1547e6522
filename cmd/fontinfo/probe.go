package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/fontengine"
)

func (a *app) probeCommand() *cobra.Command {
	var (
		stem string
		size int
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the bitmap font names searched for a pixel size",
		Long: `Probe lists the bitmap font asset names in the order the resolver
tries them. With --assets, names that exist are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stem == "" {
				return errors.New("--stem is required")
			}
			if size < 0 {
				return fmt.Errorf("invalid pixel size %d", size)
			}

			store := a.store()
			for i, name := range fontengine.BitmapCandidates(stem, size) {
				mark := styleDim.Render("-")
				if a.assetsDir != "" && store.Exists(name) {
					mark = styleFound.Render("found")
				}
				fmt.Fprintf(a.out, "%3d  %s  %s\n", i+1, name, mark)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stem, "stem", "", "asset name without size and extension")
	cmd.Flags().IntVarP(&size, "size", "s", 16, "pixel size")
	return cmd
}
