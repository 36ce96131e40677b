package writer

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/argo-ta/internal/registry"
	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// CSVWriter writes bar-aligned lines to <name>.csv (one row per bar) and
// event lines to <name>_events.csv (one row per event). NaN is an empty cell.
type CSVWriter struct {
	dir string
}

func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// Write implements ResultWriter.
func (w *CSVWriter) Write(name string, columns series.Columns, result registry.Result) ([]string, error) {
	aligned, events := splitLines(result)

	var paths []string

	if len(aligned) > 0 {
		header := []string{"index", "time"}
		for _, line := range aligned {
			header = append(header, line.Name)
		}

		rows := make([][]string, 0, result.Length)

		for i := 0; i < result.Length; i++ {
			row := []string{strconv.Itoa(i), formatTime(columns.TimeAt(i))}
			for _, line := range aligned {
				row = append(row, formatFloat(line.Values[i]))
			}

			rows = append(rows, row)
		}

		path := filepath.Join(w.dir, name+".csv")
		if err := writeRows(path, header, rows); err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	if len(events) > 0 {
		var rows [][]string

		for _, line := range events {
			for i, value := range line.Values {
				index := ""
				if i < len(line.Index) {
					index = strconv.Itoa(line.Index[i])
				}

				rows = append(rows, []string{line.Name, index, formatTime(timeAt(columns, line.Index, i)), formatFloat(value)})
			}
		}

		path := filepath.Join(w.dir, name+"_events.csv")
		if err := writeRows(path, []string{"line", "index", "time", "value"}, rows); err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func writeRows(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to create %s", path)
	}
	defer file.Close()

	writer := gocsv.DefaultCSVWriter(file)

	if err := writer.Write(header); err != nil {
		return errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to write %s", path)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to write %s", path)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to flush %s", path)
	}

	return nil
}

func formatFloat(value float64) string {
	if !finite(value) {
		return ""
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}
