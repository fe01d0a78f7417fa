package world

import "fmt"

// ViewSettings controls the non-scene overlays of a render pass.
type ViewSettings struct {
	ShowGrid    bool `json:"showGrid" yaml:"showGrid"`
	ShowHelpers bool `json:"showHelpers" yaml:"showHelpers"`
}

// DefaultView shows everything.
func DefaultView() ViewSettings {
	return ViewSettings{ShowGrid: true, ShowHelpers: true}
}

// ExportSettings controls what an image export renders.
type ExportSettings struct {
	ShowGrid    bool  `json:"showGrid" yaml:"showGrid"`
	ShowHelpers bool  `json:"showHelpers" yaml:"showHelpers"`
	Width       int32 `json:"width" yaml:"width"`
	Height      int32 `json:"height" yaml:"height"`
}

// MaxExportSize bounds each side of an exported image.
const MaxExportSize = 8192

// Resolve fills in a zero size from the fallback (normally the window size)
// and rejects sizes that can't be rendered.
func (s ExportSettings) Resolve(fallbackW, fallbackH int32) (ExportSettings, error) {
	if s.Width == 0 {
		s.Width = fallbackW
	}
	if s.Height == 0 {
		s.Height = fallbackH
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("export size %dx%d must be positive", s.Width, s.Height)
	}
	if s.Width > MaxExportSize || s.Height > MaxExportSize {
		return s, fmt.Errorf("export size %dx%d exceeds %d", s.Width, s.Height, MaxExportSize)
	}
	return s, nil
}

// applyExportView switches view to the export's visibility flags and
// returns a func that puts the previous settings back.
func applyExportView(view *ViewSettings, s ExportSettings) (restore func()) {
	prev := *view
	view.ShowGrid = s.ShowGrid
	view.ShowHelpers = s.ShowHelpers
	return func() { *view = prev }
}
