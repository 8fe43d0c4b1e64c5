package cli

import (
	"errors"

	"shipment-validator/internal/core/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ErrInvalidShipments is returned by validate --fail-on-invalid when the batch has invalid shipments.
var ErrInvalidShipments = errors.New("batch contains invalid shipments")

type rootFlags struct {
	logLevel string
	workers  int
}

// NewRootCommand builds the validator command tree. Files are read and written through fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "validator",
		Short: "Validate shipment tracking histories",
		Long: `Validate shipment tracking histories against the carrier status lifecycle.

Examples:
  # Validate a batch and print a summary table
  validator validate shipments.json

  # Export only invalid shipments as YAML
  validator validate shipments.json --format yaml --status invalid --output report.yaml

  # Store a report on a running service, then fetch its invalid shipments
  validator submit shipments.json --server http://localhost:8080
  validator report 01J9ZK3V1Q8M2N4P6R7S8T9V0W --status invalid

  # List known status codes
  validator codes`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logLevel == "" {
				return nil
			}
			return logger.Init("development", flags.logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Enable logging to stderr at this level (debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&flags.workers, "workers", 4, "Number of shipments evaluated concurrently")

	cmd.AddCommand(newValidateCommand(fs, flags))
	cmd.AddCommand(newSubmitCommand(fs))
	cmd.AddCommand(newReportCommand(fs))
	cmd.AddCommand(newCodesCommand())

	return cmd
}
