// Package writer persists indicator results to files.
package writer

import (
	"math"
	"os"
	"time"

	"github.com/rxtech-lab/argo-ta/internal/config"
	"github.com/rxtech-lab/argo-ta/internal/registry"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// ResultWriter writes one indicator result under the given name and returns
// the paths of the files it created.
type ResultWriter interface {
	Write(name string, columns series.Columns, result registry.Result) ([]string, error)
}

// New returns the writer for format rooted at dir. The directory is created if needed.
func New(format config.OutputFormat, dir string) (ResultWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to create output directory %s", dir)
	}

	switch format {
	case config.OutputFormatCSV:
		return NewCSVWriter(dir), nil
	case config.OutputFormatJSON:
		return NewJSONWriter(dir), nil
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported output format %q", format)
	}
}

func splitLines(result registry.Result) (aligned, events []types.Line) {
	for _, line := range result.Lines {
		if line.Aligned {
			aligned = append(aligned, line)
		} else {
			events = append(events, line)
		}
	}

	return aligned, events
}

// timeAt returns the bar time for an event index, or the zero time for
// events with no originating bar.
func timeAt(columns series.Columns, index []int, i int) time.Time {
	if i >= len(index) {
		return time.Time{}
	}

	return columns.TimeAt(index[i])
}

func finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
