package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"oifits-merge/internal/types"
)

// processOIPrimaryHDU builds or adopts the output primary HDU.
func processOIPrimaryHDU(ctx context.Context, mc *mergeContext) {
	var imageHdu types.PrimaryHDU

	if mc.resultFile.Version == types.VersionV2 {
		var primaryHdu *types.OIPrimaryHDU

		if len(mc.usedOIPrimaryHDU) == 1 {
			// single source file: keep its primary HDU by reference.
			primaryHdu = mc.usedOIPrimaryHDU[0]
		} else {
			primaryHdu = types.NewOIPrimaryHDU()

			keyValues := make(map[string]map[string]struct{}, 32)
			var keyOrder = make(map[string][]string, 32)

			for _, hdu := range mc.usedOIPrimaryHDU {
				for _, keyword := range hdu.KeywordDescCollection() {
					if keyword.Optional {
						continue
					}
					value, ok := hdu.GetKeywordValue(keyword.Name)
					if !ok {
						continue
					}
					values := keyValues[keyword.Name]
					if values == nil {
						values = make(map[string]struct{})
						keyValues[keyword.Name] = values
					}
					if _, seen := values[value]; !seen {
						values[value] = struct{}{}
						keyOrder[keyword.Name] = append(keyOrder[keyword.Name], value)
					}
				}
			}

			// note: not really correct as filters can reduce the number
			// of valid entries (TARGET ...)
			for _, keyword := range primaryHdu.KeywordDescCollection() {
				if keyword.Optional {
					continue
				}
				values := keyOrder[keyword.Name]

				var value string
				switch len(values) {
				case 0:
					value = types.Undefined
				case 1:
					value = values[0]
				default:
					value = types.ValueMulti
				}
				primaryHdu.SetKeyword(keyword.Name, value)
			}
		}

		primaryHdu.SetContent(types.ContentOIFITS2)
		primaryHdu.SetDate(mc.now())
		imageHdu = primaryHdu
	} else {
		v1 := types.NewFitsImageHDU()
		v1.AddHeaderCard("DATE", mc.now(), "Date the HDU was written")
		imageHdu = v1
	}

	imageHdu.AddHistory(types.HistoryWrittenBy)
	mc.resultFile.SetPrimaryImageHdu(imageHdu)

	log.Ctx(ctx).Debug().Int("sources", len(mc.usedOIPrimaryHDU)).Msg("primary header synthesized")
}
