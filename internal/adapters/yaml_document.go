package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"oifits-merge/internal/types"
)

// YAMLDocumentAdapter reads and writes OIFitsFile documents in a YAML
// stand-in for the real FITS binary-table encoding, which is out of
// scope for this module; see DESIGN.md.
type YAMLDocumentAdapter struct{}

// NewYAMLDocumentAdapter returns a ready-to-use adapter.
func NewYAMLDocumentAdapter() YAMLDocumentAdapter {
	return YAMLDocumentAdapter{}
}

type documentDTO struct {
	Version      string          `yaml:"version"`
	PrimaryHDU   primaryHDUDTO   `yaml:"primaryHdu"`
	Target       []targetRowDTO  `yaml:"target"`
	Wavelength   []wavelengthDTO `yaml:"wavelength"`
	Array        []arrayDTO      `yaml:"array"`
	Corr         []corrDTO       `yaml:"corr,omitempty"`
	Data         []dataTableDTO  `yaml:"data"`
}

type primaryHDUDTO struct {
	Keywords     map[string]string `yaml:"keywords,omitempty"`
	OptionalCard map[string]string `yaml:"optionalCards,omitempty"`
	HistoryLines []string          `yaml:"history,omitempty"`
}

type targetRowDTO struct {
	ID   int16   `yaml:"id"`
	Name string  `yaml:"name"`
	RA   float64 `yaml:"ra"`
	Dec  float64 `yaml:"dec"`
}

type wavelengthDTO struct {
	InsName string    `yaml:"insName"`
	EffWave []float64 `yaml:"effWave"`
}

type arrayStationDTO struct {
	StaIndex int16  `yaml:"staIndex"`
	StaName  string `yaml:"staName"`
}

type arrayDTO struct {
	ArrName  string            `yaml:"arrName"`
	Stations []arrayStationDTO `yaml:"stations"`
}

type corrDTO struct {
	CorrName string `yaml:"corrName"`
	NData    int    `yaml:"nData"`
}

type dataRowDTO struct {
	TargetID int16     `yaml:"targetId"`
	NightID  int64     `yaml:"nightId"`
	MJD      float64   `yaml:"mjd"`
	StaIndex []int16   `yaml:"staIndex"`
	Channel  []float64 `yaml:"channel,omitempty"`
}

type dataTableDTO struct {
	Kind     string       `yaml:"kind"`
	InsName  string       `yaml:"insName"`
	ArrName  string       `yaml:"arrName"`
	CorrName *string      `yaml:"corrName,omitempty"`
	Rows     []dataRowDTO `yaml:"rows"`
}

// ReadFile loads an OIFitsFile from a YAML document at path.
func (a YAMLDocumentAdapter) ReadFile(path string) (*types.OIFitsFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("oifits document not found").
			WithCause(err)
	}

	var doc documentDTO
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse oifits document").
			WithCause(err)
	}

	return decodeDocument(doc)
}

// WriteFile encodes file as a YAML document at path.
func (a YAMLDocumentAdapter) WriteFile(path string, file *types.OIFitsFile) error {
	doc := encodeDocument(file)
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode oifits document").
			WithCause(err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write oifits document").
			WithCause(err)
	}
	return nil
}

func decodeDocument(doc documentDTO) (*types.OIFitsFile, error) {
	var version types.OIFitsStandard
	switch doc.Version {
	case "OIFITS1", "":
		version = types.VersionV1
	case "OIFITS2":
		version = types.VersionV2
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown oifits version: " + doc.Version)
	}

	file := types.NewOIFitsFile(version)

	hdu := types.NewOIPrimaryHDU()
	for k, v := range doc.PrimaryHDU.Keywords {
		hdu.SetKeyword(k, v)
	}
	for k, v := range doc.PrimaryHDU.OptionalCard {
		hdu.OptionalCard[k] = v
	}
	for _, line := range doc.PrimaryHDU.HistoryLines {
		hdu.AddHistory(line)
	}
	file.SetPrimaryImageHdu(hdu)

	tm := types.NewTargetManager()
	oiTarget := types.NewOITarget(len(doc.Target))
	for i, row := range doc.Target {
		oiTarget.SetTarget(i, row.ID, tm.Resolve(row.Name, row.RA, row.Dec))
	}
	file.AddOiTable(oiTarget)

	wavelengthByName := make(map[string]*types.OIWavelength, len(doc.Wavelength))
	for _, w := range doc.Wavelength {
		oiw := types.NewOIWavelength(w.InsName, w.EffWave)
		file.AddOiTable(oiw)
		wavelengthByName[w.InsName] = oiw
	}

	arrayByName := make(map[string]*types.OIArray, len(doc.Array))
	for _, a := range doc.Array {
		stations := make([]types.StationEntry, len(a.Stations))
		for i, s := range a.Stations {
			stations[i] = types.StationEntry{StaIndex: s.StaIndex, StaName: s.StaName}
		}
		oia := types.NewOIArray(a.ArrName, stations)
		file.AddOiTable(oia)
		arrayByName[a.ArrName] = oia
	}

	corrByName := make(map[string]*types.OICorr, len(doc.Corr))
	for _, c := range doc.Corr {
		oic := types.NewOICorr(c.CorrName, c.NData)
		file.AddOiTable(oic)
		corrByName[c.CorrName] = oic
	}

	interner := types.NewStaIndexInterner()
	for _, d := range doc.Data {
		wl, ok := wavelengthByName[d.InsName]
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("data table references unknown wavelength table: " + d.InsName)
		}
		arr, ok := arrayByName[d.ArrName]
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("data table references unknown array table: " + d.ArrName)
		}
		var corr *types.OICorr
		if d.CorrName != nil {
			corr, ok = corrByName[*d.CorrName]
			if !ok {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("data table references unknown correlation table: " + *d.CorrName)
			}
		}

		table, err := newDataTable(d.Kind, wl, arr, corr)
		if err != nil {
			return nil, err
		}
		table.BindTarget(oiTarget)

		for _, row := range d.Rows {
			sta := interner.Intern(row.StaIndex...)
			table.AddRow(row.TargetID, types.NightID(row.NightID), row.MJD, sta, row.Channel)
		}
		file.AddOiData(table)
	}

	return file, nil
}

func newDataTable(kind string, wl *types.OIWavelength, arr *types.OIArray, corr *types.OICorr) (types.OIData, error) {
	switch types.OIDataKind(kind) {
	case types.KindVis2:
		return types.NewOIVis2Data(wl, arr, corr), nil
	case types.KindVis:
		return types.NewOIVisData(wl, arr, corr), nil
	case types.KindT3:
		return types.NewOIT3Data(wl, arr, corr), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown data table kind: " + kind)
	}
}

func encodeDocument(file *types.OIFitsFile) documentDTO {
	doc := documentDTO{Version: file.Version.String()}

	if hdu := file.GetOIPrimaryHDU(); hdu != nil {
		doc.PrimaryHDU = primaryHDUDTO{
			Keywords:     hdu.Keywords,
			OptionalCard: hdu.OptionalCard,
			HistoryLines: hdu.HistoryLines,
		}
	}

	if file.OiTarget != nil {
		for _, row := range file.OiTarget.Rows {
			doc.Target = append(doc.Target, targetRowDTO{
				ID: row.ID, Name: row.Target.Name, RA: row.Target.RA, Dec: row.Target.Dec,
			})
		}
	}

	for _, w := range file.OiWavelength {
		doc.Wavelength = append(doc.Wavelength, wavelengthDTO{InsName: w.InsName, EffWave: w.EffWave})
	}

	for _, a := range file.OiArray {
		stations := make([]arrayStationDTO, len(a.Stations))
		for i, s := range a.Stations {
			stations[i] = arrayStationDTO{StaIndex: s.StaIndex, StaName: s.StaName}
		}
		doc.Array = append(doc.Array, arrayDTO{ArrName: a.ArrName, Stations: stations})
	}

	for _, c := range file.OiCorr {
		doc.Corr = append(doc.Corr, corrDTO{CorrName: c.CorrName, NData: c.NData})
	}

	for _, d := range file.OiData {
		table := dataTableDTO{
			Kind:     string(d.Kind()),
			InsName:  d.InsName(),
			ArrName:  d.ArrName(),
			CorrName: d.CorrName(),
		}
		staIdx := d.StaIndexes()
		channels := channelValuesOf(d)
		for i := 0; i < d.NbRows(); i++ {
			var channel []float64
			if channels != nil {
				channel = channels[i]
			}
			table.Rows = append(table.Rows, dataRowDTO{
				TargetID: d.TargetID()[i],
				NightID:  int64(d.NightID()[i]),
				MJD:      d.MJD()[i],
				StaIndex: append([]int16(nil), (*staIdx[i])...),
				Channel:  channel,
			})
		}
		doc.Data = append(doc.Data, table)
	}

	return doc
}

func channelValuesOf(d types.OIData) [][]float64 {
	switch t := d.(type) {
	case *types.OIVis2Data:
		return t.Vis2Data()
	case *types.OIVisData:
		return t.VisAmp()
	case *types.OIT3Data:
		return t.T3Phi()
	default:
		return nil
	}
}
