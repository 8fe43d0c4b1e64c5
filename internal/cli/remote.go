package cli

import (
	"fmt"
	"time"

	"shipment-validator/internal/core/httpclient"
	"shipment-validator/internal/features/validation/adapters"
	"shipment-validator/internal/features/validation/domain"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type remoteFlags struct {
	server  string
	timeout time.Duration
	format  string
	status  string
}

func (f *remoteFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.server, "server", "http://localhost:8080", "Base URL of the validator service")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 30*time.Second, "HTTP request timeout")
	cmd.Flags().StringVar(&f.format, "format", formatTable, "Output format (table, json, yaml)")
}

func (f *remoteFlags) client() *adapters.APIClient {
	return adapters.NewAPIClient(f.server, httpclient.NewClient(f.timeout))
}

func newSubmitCommand(fs afero.Fs) *cobra.Command {
	flags := &remoteFlags{}

	cmd := &cobra.Command{
		Use:   "submit <file>",
		Short: "Send a batch to a running validator service and store the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shipments, err := adapters.NewFileShipmentReader(fs).Read(args[0])
			if err != nil {
				return err
			}

			id, report, err := flags.client().Submit(cmd.Context(), shipments)
			if err != nil {
				return err
			}

			pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("Report stored as %s", id)
			return printReport(cmd, fs, report, flags.format)
		},
	}
	flags.bind(cmd)

	return cmd
}

func newReportCommand(fs afero.Fs) *cobra.Command {
	flags := &remoteFlags{}

	cmd := &cobra.Command{
		Use:   "report <id>",
		Short: "Fetch a stored report from a running validator service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := domain.ParseStatusFilter(flags.status)
			if err != nil {
				return err
			}

			report, err := flags.client().GetReport(cmd.Context(), args[0], filter)
			if err != nil {
				return err
			}
			return printReport(cmd, fs, report, flags.format)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&flags.status, "status", string(domain.FilterAll), "Shipments to include (all, valid, invalid)")

	return cmd
}

func printReport(cmd *cobra.Command, fs afero.Fs, report *domain.Report, format string) error {
	switch format {
	case formatTable:
		return renderReport(cmd.OutOrStdout(), report)
	case string(adapters.FormatJSON), string(adapters.FormatYAML):
		return adapters.NewReportWriter(fs).Encode(cmd.OutOrStdout(), report, adapters.Format(format))
	}
	return fmt.Errorf("%w: %q", adapters.ErrUnsupportedFormat, format)
}
