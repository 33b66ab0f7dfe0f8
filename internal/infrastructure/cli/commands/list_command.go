package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/app"
	"github.com/tftio/prompter/internal/domain"
)

// NewListCommand creates the list command. Its plain output, one profile per
// line, is what the completion scripts read.
func NewListCommand(container *app.Container) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   domain.ListCommandName,
		Short: "List available profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := container.Library(configPath).List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if handled, err := writeStructured(out, formatFromFlags(cmd), names); handled {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, flagConfig, "c", "", helpConfig)
	_ = cmd.MarkFlagFilename(flagConfig)
	addFormatFlags(cmd, true)
	return cmd
}

// NewTreeCommand creates the tree command.
func NewTreeCommand(container *app.Container) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the dependency tree of every profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := container.Library(configPath).Tree(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if handled, err := writeStructured(out, formatFromFlags(cmd), nodes); handled {
				return err
			}
			for _, node := range nodes {
				writeTree(out, node, "", "")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, flagConfig, "c", "", helpConfig)
	_ = cmd.MarkFlagFilename(flagConfig)
	addFormatFlags(cmd, true)
	return cmd
}

func writeTree(out io.Writer, node domain.TreeNode, prefix, childPrefix string) {
	fmt.Fprintf(out, "%s%s%s\n", prefix, node.Name, treeSuffix(node))
	for i, child := range node.Children {
		if i == len(node.Children)-1 {
			writeTree(out, child, childPrefix+"└── ", childPrefix+"    ")
		} else {
			writeTree(out, child, childPrefix+"├── ", childPrefix+"│   ")
		}
	}
}

func treeSuffix(node domain.TreeNode) string {
	var marks []string
	if node.Cycle {
		marks = append(marks, "cycle")
	}
	if node.Missing {
		marks = append(marks, "missing")
	}
	if len(marks) == 0 {
		return ""
	}
	return " " + styleError.Render("("+strings.Join(marks, ", ")+")")
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(container *app.Container) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every profile resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool(flagJSON)
			err := container.Library(configPath).Validate(cmd.Context())
			if asJSON {
				return writeValidation(cmd, err)
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError("Validation failed:"))
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", line)
				}
				return ErrAlreadyReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderOK("All profiles valid"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, flagConfig, "c", "", helpConfig)
	_ = cmd.MarkFlagFilename(flagConfig)
	addFormatFlags(cmd, false)
	return cmd
}

type validationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func writeValidation(cmd *cobra.Command, err error) error {
	report := validationReport{Valid: err == nil, Errors: []string{}}
	if err != nil {
		report.Errors = strings.Split(err.Error(), "\n")
	}
	if werr := writeJSON(cmd.OutOrStdout(), report); werr != nil {
		return werr
	}
	if err != nil {
		return ErrAlreadyReported
	}
	return nil
}
