package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rxtech-lab/argo-ta/internal/registry"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// JSONWriter writes the whole result to <name>.json. NaN becomes null.
type JSONWriter struct {
	dir string
}

func NewJSONWriter(dir string) *JSONWriter {
	return &JSONWriter{dir: dir}
}

type jsonLine struct {
	Name    string      `json:"name"`
	Aligned bool        `json:"aligned"`
	Index   []int       `json:"index,omitempty"`
	Values  []*float64  `json:"values"`
	Time    []time.Time `json:"time,omitempty"`
}

type jsonResult struct {
	Indicator types.IndicatorType `json:"indicator"`
	Length    int                 `json:"length"`
	Time      []time.Time         `json:"time,omitempty"`
	Lines     []jsonLine          `json:"lines"`
}

// Write implements ResultWriter.
func (w *JSONWriter) Write(name string, columns series.Columns, result registry.Result) ([]string, error) {
	out := jsonResult{
		Indicator: result.Indicator,
		Length:    result.Length,
		Time:      columns.Time,
		Lines:     make([]jsonLine, 0, len(result.Lines)),
	}

	for _, line := range result.Lines {
		converted := jsonLine{
			Name:    line.Name,
			Aligned: line.Aligned,
			Index:   line.Index,
			Values:  nullable(line.Values),
		}

		if !line.Aligned && len(line.Index) > 0 && len(columns.Time) > 0 {
			converted.Time = make([]time.Time, len(line.Index))
			for i, index := range line.Index {
				converted.Time[i] = columns.TimeAt(index)
			}
		}

		out.Lines = append(out.Lines, converted)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, "failed to encode result", err)
	}

	path := filepath.Join(w.dir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to write %s", path)
	}

	return []string{path}, nil
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))

	for i := range values {
		if finite(values[i]) {
			out[i] = &values[i]
		}
	}

	return out
}
