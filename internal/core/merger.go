package core

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"oifits-merge/internal/selector"
	"oifits-merge/internal/types"
)

// nowFitsTimestamp formats the current instant the way FITS DATE cards
// expect: "YYYY-MM-DDTHH:MM:SS".
func nowFitsTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05")
}

// Merge consolidates a set of OIFITS files into a single output file,
// applying no selection criteria and defaulting the output standard to
// the maximum version among the inputs.
func Merge(ctx context.Context, files ...*types.OIFitsFile) (*types.OIFitsFile, error) {
	if len(files) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one oifits file is required")
	}
	return MergeCollection(ctx, types.NewOIFitsCollection(files...))
}

// MergeCollection consolidates every file in the collection with no
// selection criteria.
func MergeCollection(ctx context.Context, collection *types.OIFitsCollection) (*types.OIFitsFile, error) {
	return MergeSelected(ctx, collection, nil)
}

// MergeSelected consolidates the files in collection scoped by selector
// (nil means "no filtering"), defaulting the output standard to the
// maximum version among the inputs.
func MergeSelected(ctx context.Context, collection *types.OIFitsCollection, sel *types.Selector) (*types.OIFitsFile, error) {
	return MergeStandard(ctx, collection, sel, nil)
}

// MergeStandard consolidates the files in collection scoped by sel,
// tagging the output with std if non-nil, else the maximum input version.
func MergeStandard(ctx context.Context, collection *types.OIFitsCollection, sel *types.Selector, std *types.OIFitsStandard) (*types.OIFitsFile, error) {
	if collection.IsEmpty() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("oifits collection is required and must not be empty")
	}

	result := selector.BuildSelectorResult(collection, sel)
	return MergeResult(ctx, result, std)
}

// MergeResult runs the merge pipeline over a precomputed SelectorResult.
// A nil result is treated as an empty selection: the output carries only
// a primary HDU.
func MergeResult(ctx context.Context, result *types.SelectorResult, std *types.OIFitsStandard) (*types.OIFitsFile, error) {
	if result == nil {
		log.Ctx(ctx).Info().Msg("empty selection, returning primary-HDU-only file")
		outputFile := buildOutputFile(ctx, std, nil)
		mc := newMergeContext(nil, outputFile, nowFitsTimestamp)
		processOIPrimaryHDU(ctx, mc)
		return outputFile, nil
	}

	outputFile := buildOutputFile(ctx, std, result)
	mc := newMergeContext(result, outputFile, nowFitsTimestamp)

	collectTables(mc)
	processOIPrimaryHDU(ctx, mc)
	processOITarget(ctx, mc)
	processOIWavelengths(ctx, mc)
	processOIArrays(ctx, mc)
	if outputFile.IsOIFits2() {
		processOICorrs(ctx, mc)
	}
	processOIData(ctx, mc)

	log.Ctx(ctx).Info().
		Int("files", len(result.GetSortedOIFitsFiles())).
		Int("dataTables", len(outputFile.OiData)).
		Str("version", outputFile.Version.String()).
		Msg("merge complete")

	return outputFile, nil
}
