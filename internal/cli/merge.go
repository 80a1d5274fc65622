package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oifits-merge/internal/adapters"
	"oifits-merge/internal/core"
	"oifits-merge/internal/types"
)

type mergeOptions struct {
	Inputs   []string
	Output   string
	Selector string
	Standard string
}

func newMergeCommand() *cobra.Command {
	opts := mergeOptions{}
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Consolidate one or more OIFITS documents into one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMerge(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Inputs, "input", nil, "Input document paths")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output document path")
	cmd.Flags().StringVar(&opts.Selector, "selector", "", "Optional selector config path")
	cmd.Flags().StringVar(&opts.Standard, "standard", "", "Force output standard: OIFITS1 or OIFITS2")
	_ = viper.BindPFlag("inputs", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runMerge(cmd *cobra.Command, opts mergeOptions) error {
	inputs := resolveStrings(cmd, opts.Inputs, "inputs", "input")
	output := resolveString(cmd, opts.Output, "output", "output")

	if len(inputs) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one --input document is required")
	}
	if output == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("--output document path is required")
	}

	docAdapter := adapters.NewYAMLDocumentAdapter()
	files := make([]*types.OIFitsFile, 0, len(inputs))
	for _, path := range inputs {
		f, err := docAdapter.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	var sel *types.Selector
	if opts.Selector != "" {
		selAdapter := adapters.NewYAMLSelectorAdapter()
		s, err := selAdapter.LoadSelector(opts.Selector)
		if err != nil {
			return err
		}
		sel = s
	}

	var std *types.OIFitsStandard
	switch opts.Standard {
	case "":
	case "OIFITS1":
		v := types.VersionV1
		std = &v
	case "OIFITS2":
		v := types.VersionV2
		std = &v
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("--standard must be OIFITS1 or OIFITS2")
	}

	ctx := cmd.Context()
	collection := types.NewOIFitsCollection(files...)
	result, err := core.MergeStandard(ctx, collection, sel, std)
	if err != nil {
		return err
	}

	if err := docAdapter.WriteFile(output, result); err != nil {
		return err
	}

	log.Ctx(ctx).Info().Str("output", output).Msg("merge written")
	fmt.Printf("merged %d file(s) into %s\n", len(files), output)
	return nil
}
