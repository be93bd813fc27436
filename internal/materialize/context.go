package materialize

import (
	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
)

// RenderContext is the data rendered templates see: every answer plus a
// few derived values.
type RenderContext struct {
	answers.Record
	Keywords []string
	BugsURL  string
	Year     int
}

// NewRenderContext derives the render context from a record.
func NewRenderContext(rec answers.Record, year int) RenderContext {
	return RenderContext{
		Record:   rec,
		Keywords: manifest.Keywords(rec.PackageKeywords),
		BugsURL:  manifest.BugsURL(rec.URLRepository),
		Year:     year,
	}
}
