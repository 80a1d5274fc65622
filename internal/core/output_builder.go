package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"oifits-merge/internal/types"
)

// buildOutputFile decides the output standard and constructs a fresh,
// empty OIFitsFile.
func buildOutputFile(ctx context.Context, std *types.OIFitsStandard, result *types.SelectorResult) *types.OIFitsFile {
	var version types.OIFitsStandard

	if std != nil {
		version = *std
	} else if result == nil {
		version = types.VersionV1
	} else {
		version = types.VersionV1
		for _, f := range result.GetSortedOIFitsFiles() {
			if f.Version.Ordinal() > version.Ordinal() {
				version = f.Version
			}
			if version == types.VersionV2 {
				break
			}
		}
	}

	log.Ctx(ctx).Info().Str("version", version.String()).Msg("using oifits standard")
	return types.NewOIFitsFile(version)
}
