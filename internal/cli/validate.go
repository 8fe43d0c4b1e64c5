package cli

import (
	"fmt"
	"io"
	"strconv"

	"shipment-validator/internal/features/validation/adapters"
	"shipment-validator/internal/features/validation/domain"
	"shipment-validator/internal/features/validation/service"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const formatTable = "table"

type validateFlags struct {
	format        string
	status        string
	output        string
	failOnInvalid bool
}

func newValidateCommand(fs afero.Fs, root *rootFlags) *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a JSON batch of shipments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, fs, root, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatTable, "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&flags.status, "status", string(domain.FilterAll), "Shipments to include (all, valid, invalid)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.failOnInvalid, "fail-on-invalid", false, "Exit with an error when any shipment is invalid")

	return cmd
}

func runValidate(cmd *cobra.Command, fs afero.Fs, root *rootFlags, flags *validateFlags, path string) error {
	filter, err := domain.ParseStatusFilter(flags.status)
	if err != nil {
		return err
	}

	switch flags.format {
	case formatTable, string(adapters.FormatJSON), string(adapters.FormatYAML):
	default:
		return fmt.Errorf("%w: %q", adapters.ErrUnsupportedFormat, flags.format)
	}
	if flags.format == formatTable && flags.output != "" {
		return fmt.Errorf("--output requires --format json or yaml")
	}

	shipments, err := adapters.NewFileShipmentReader(fs).Read(path)
	if err != nil {
		return err
	}

	report, err := service.NewValidationService(nil, nil, root.workers).Validate(cmd.Context(), shipments)
	if err != nil {
		return err
	}

	view := report.Filter(filter)

	if flags.output != "" {
		writer := adapters.NewReportWriter(fs)
		if err := writer.WriteFile(flags.output, view, adapters.Format(flags.format)); err != nil {
			return err
		}
		pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("Report written to %s", flags.output)
	} else if err := printReport(cmd, fs, view, flags.format); err != nil {
		return err
	}

	if flags.failOnInvalid && report.Summary.InvalidShipments > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidShipments, report.Summary.InvalidShipments, report.Summary.TotalShipments)
	}
	return nil
}

func renderReport(w io.Writer, report *domain.Report) error {
	s := report.Summary
	pterm.Info.WithWriter(w).Printfln("Shipments: %d total, %d valid, %d invalid, %d anomalies",
		s.TotalShipments, s.ValidShipments, s.InvalidShipments, s.AnomaliesDetected)

	rows := [][]string{{"Shipment", "Tracking ID", "Status", "Current", "Events", "Anomalies"}}
	for _, r := range report.Shipments {
		current := "-"
		if r.CurrentStatus != nil {
			current = fmt.Sprintf("%d %s", *r.CurrentStatus, *r.CurrentStatusName)
		}
		rows = append(rows, []string{
			r.ShipmentNo,
			r.TrackingID,
			string(r.Status),
			current,
			strconv.Itoa(r.EventCount),
			strconv.Itoa(len(r.Anomalies)),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(rows).Render(); err != nil {
		return fmt.Errorf("failed to render shipments: %w", err)
	}

	counts := [][]string{{"Category", "Count"}}
	for _, c := range domain.Categories {
		counts = append(counts, []string{string(c), strconv.Itoa(report.AnomalySummary.Count(c))})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(counts).Render(); err != nil {
		return fmt.Errorf("failed to render anomaly summary: %w", err)
	}

	for _, r := range report.Shipments {
		for _, a := range r.Anomalies {
			pterm.Warning.WithWriter(w).Printfln("%s [%s] %s", r.ShipmentNo, a.Type, a.Message)
		}
	}
	return nil
}
