package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"oifits-merge/internal/types"
)

// YAMLSelectorAdapter loads Selector filter criteria from a YAML file.
type YAMLSelectorAdapter struct{}

// NewYAMLSelectorAdapter returns a ready-to-use adapter.
func NewYAMLSelectorAdapter() YAMLSelectorAdapter {
	return YAMLSelectorAdapter{}
}

type rangeDTO struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

type selectorDTO struct {
	TargetNames      []string   `yaml:"targetNames,omitempty"`
	InsModes         []string   `yaml:"insModes,omitempty"`
	Nights           []int64    `yaml:"nights,omitempty"`
	Baselines        []string   `yaml:"baselines,omitempty"`
	MJDRanges        []rangeDTO `yaml:"mjdRanges,omitempty"`
	WavelengthRanges []rangeDTO `yaml:"wavelengthRanges,omitempty"`
}

// LoadSelector reads a Selector from the YAML file at path.
func (a YAMLSelectorAdapter) LoadSelector(path string) (*types.Selector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("selector file not found").
			WithCause(err)
	}

	var dto selectorDTO
	if err := yaml.Unmarshal(raw, &dto); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse selector yaml").
			WithCause(err)
	}

	sel := &types.Selector{
		TargetNames: dto.TargetNames,
		InsModes:    dto.InsModes,
		Baselines:   dto.Baselines,
	}
	for _, n := range dto.Nights {
		sel.Nights = append(sel.Nights, types.NightID(n))
	}
	for _, r := range dto.MJDRanges {
		sel.MJDRanges = append(sel.MJDRanges, types.Range{Lo: r.Lo, Hi: r.Hi})
	}
	for _, r := range dto.WavelengthRanges {
		sel.WavelengthRanges = append(sel.WavelengthRanges, types.Range{Lo: r.Lo, Hi: r.Hi})
	}
	return sel, nil
}
