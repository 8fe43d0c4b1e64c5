package cli

import (
	"fmt"
	"strconv"
	"strings"

	"shipment-validator/internal/features/validation/domain"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List known status codes and their allowed next states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{{"Code", "Name", "Phase", "Start", "Terminal", "Next"}}
			for _, d := range domain.Statuses() {
				next := make([]string, 0, len(d.Next))
				for _, n := range d.Next {
					next = append(next, strconv.Itoa(int(n)))
				}
				rows = append(rows, []string{
					strconv.Itoa(int(d.Code)),
					d.Name,
					string(d.Phase),
					yesNo(d.Start),
					yesNo(d.Terminal),
					strings.Join(next, ","),
				})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(rows).Render(); err != nil {
				return fmt.Errorf("failed to render status codes: %w", err)
			}
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
