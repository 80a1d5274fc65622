package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"oifits-merge/internal/adapters"
)

type validateOptions struct {
	Inputs []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that OIFITS documents parse and reference resolvable tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Inputs, "input", nil, "Input document paths")
	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	inputs := resolveStrings(cmd, opts.Inputs, "inputs", "input")
	if len(inputs) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one --input document is required")
	}

	docAdapter := adapters.NewYAMLDocumentAdapter()
	for _, path := range inputs {
		if _, err := docAdapter.ReadFile(path); err != nil {
			return err
		}
		fmt.Printf("valid: %s\n", path)
	}
	return nil
}
