package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openfauna/zoolist/pkg/zoos"
)

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the configured record sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tPATH\tCONFIGURED")
			for _, tag := range zoos.SourceOrder {
				path := viper.GetString(tag.String())
				configured := "no"
				if path != "" {
					configured = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", tag, path, configured)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("wiki", "", "path to the wiki listing dump")
	cmd.Flags().String("directory", "", "path to the membership directory dump")
	cmd.Flags().String("websearch", "", "path to the web-search dump")

	return cmd
}
