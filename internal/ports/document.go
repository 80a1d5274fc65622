package ports

import "oifits-merge/internal/types"

// DocumentReaderPort loads an OIFitsFile from an on-disk document. Real
// FITS byte-level decoding is out of scope for this module; concrete
// adapters read a YAML stand-in representation instead (see DESIGN.md).
type DocumentReaderPort interface {
	ReadFile(path string) (*types.OIFitsFile, error)
}

// DocumentWriterPort writes an OIFitsFile to an on-disk document.
type DocumentWriterPort interface {
	WriteFile(path string, file *types.OIFitsFile) error
}
