package actionlens

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionlens/actionlens/pkg/version"
)

// newVersionCmd creates the command printing build information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				data, err := json.MarshalIndent(version.GetBuildInfo(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "actionlens %s\n", version.GetShortVersion())
			return nil
		},
	}
}
