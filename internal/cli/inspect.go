package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"oifits-merge/internal/adapters"
)

type inspectOptions struct {
	Input string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a summary of an OIFITS document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", "", "Input document path")
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	if opts.Input == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("--input document path is required")
	}

	docAdapter := adapters.NewYAMLDocumentAdapter()
	file, err := docAdapter.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	fmt.Printf("version: %s\n", file.Version.String())
	targets := 0
	if file.OiTarget != nil {
		targets = len(file.OiTarget.Rows)
	}
	fmt.Printf("targets: %d\n", targets)
	fmt.Printf("wavelength tables: %v\n", file.AcceptedInsNames())
	fmt.Printf("array tables: %v\n", file.AcceptedArrNames())
	fmt.Printf("correlation tables: %v\n", file.AcceptedCorrNames())
	fmt.Printf("data tables: %d\n", len(file.OiData))
	for _, d := range file.OiData {
		fmt.Printf("  %-8s insName=%-12s arrName=%-12s rows=%d\n", d.Kind(), d.InsName(), d.ArrName(), d.NbRows())
	}
	return nil
}
