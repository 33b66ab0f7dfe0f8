package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/app"
	"github.com/tftio/prompter/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration, library and completion setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := container.Doctor(configPath).Run(cmd.Context())
			out := cmd.OutOrStdout()
			handled, err := writeStructured(out, formatFromFlags(cmd), report)
			if !handled {
				displayDoctorReport(out, report)
			}
			if err != nil {
				return err
			}
			if report.HasErrors() {
				return ErrAlreadyReported
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, flagConfig, "c", "", helpConfig)
	_ = cmd.MarkFlagFilename(flagConfig)
	addFormatFlags(cmd, true)
	return cmd
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	fmt.Fprintln(out, styleHeader.Render(fmt.Sprintf("%s %s", domain.ProgramName, report.Version)))
	for _, check := range report.Checks {
		line := fmt.Sprintf("%s: %s", check.Name, styleMuted.Render(check.Details))
		switch check.Status {
		case domain.HealthOK:
			fmt.Fprintln(out, "  "+renderOK(line))
		case domain.HealthWarn:
			fmt.Fprintln(out, "  "+renderWarn(line))
		default:
			fmt.Fprintln(out, "  "+renderError(line))
		}
	}
}
