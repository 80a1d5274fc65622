package types

// KeywordMeta describes one primary-header keyword: its name and
// whether it is mandatory for the standard it belongs to.
type KeywordMeta struct {
	Name     string
	Optional bool
}

// mandatoryPrimaryKeywords is the OIFITS2 mandatory primary-header
// keyword schema. Order is fixed so the primary-header synthesis phase's
// output is deterministic.
var mandatoryPrimaryKeywords = []KeywordMeta{
	{Name: "ORIGIN"},
	{Name: "DATE"},
	{Name: "DATE-OBS"},
	{Name: "CONTENT"},
	{Name: "TELESCOP"},
	{Name: "INSTRUME"},
	{Name: "OBSERVER"},
	{Name: "OBJECT"},
	{Name: "INSMODE"},
}

// PrimaryHDU is the common capability of the two primary HDU shapes the
// Merger can produce: a bare V1 image HDU, or a full V2 keyword-schema
// HDU.
type PrimaryHDU interface {
	AddHistory(line string)
}

// OIPrimaryHDU is the OIFITS2 primary header: a named-keyword dictionary
// over a fixed mandatory schema, plus free-form optional cards and
// HISTORY lines.
type OIPrimaryHDU struct {
	Keywords     map[string]string
	OptionalCard map[string]string
	HistoryLines []string
}

// NewOIPrimaryHDU returns an empty OIFITS2 primary header.
func NewOIPrimaryHDU() *OIPrimaryHDU {
	return &OIPrimaryHDU{Keywords: make(map[string]string), OptionalCard: make(map[string]string)}
}

// KeywordDescCollection returns the mandatory keyword schema.
func (h *OIPrimaryHDU) KeywordDescCollection() []KeywordMeta {
	return mandatoryPrimaryKeywords
}

// GetKeywordValue returns a keyword's string value and whether it is set.
func (h *OIPrimaryHDU) GetKeywordValue(name string) (string, bool) {
	v, ok := h.Keywords[name]
	return v, ok
}

// SetKeyword assigns a mandatory keyword's value.
func (h *OIPrimaryHDU) SetKeyword(name, value string) {
	h.Keywords[name] = value
}

// SetContent sets the CONTENT keyword.
func (h *OIPrimaryHDU) SetContent(value string) { h.SetKeyword("CONTENT", value) }

// SetDate sets the DATE keyword.
func (h *OIPrimaryHDU) SetDate(value string) { h.SetKeyword("DATE", value) }

// AddHistory appends a HISTORY line.
func (h *OIPrimaryHDU) AddHistory(line string) {
	h.HistoryLines = append(h.HistoryLines, line)
}

// FitsImageHDU is the bare V1 primary HDU: free-form header cards and a
// history list, with no mandatory-keyword schema.
type FitsImageHDU struct {
	HeaderCards  map[string]string
	HistoryLines []string
}

// NewFitsImageHDU returns an empty V1 primary HDU.
func NewFitsImageHDU() *FitsImageHDU {
	return &FitsImageHDU{HeaderCards: make(map[string]string)}
}

// AddHeaderCard sets a free-form header card; comment is informative
// only, kept for parity with the FITS card model.
func (h *FitsImageHDU) AddHeaderCard(name, value, comment string) {
	_ = comment
	h.HeaderCards[name] = value
}

// AddHistory appends a HISTORY line.
func (h *FitsImageHDU) AddHistory(line string) {
	h.HistoryLines = append(h.HistoryLines, line)
}
