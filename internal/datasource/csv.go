package datasource

import (
	"context"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/argo-ta/internal/logger"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"go.uber.org/zap"
)

// CSVSource reads bars from a CSV file with a header row of
// symbol,time,open,high,low,close,volume. Time is RFC3339. An empty price cell
// loads as NaN; any other unparsable cell fails the load.
type CSVSource struct {
	path   string
	filter Filter
	logger *logger.Logger
}

func NewCSVSource(path string, filter Filter, log *logger.Logger) *CSVSource {
	return &CSVSource{path: path, filter: filter, logger: log}
}

// Load implements BarSource. Bars keep file order.
func (c *CSVSource) Load(ctx context.Context) ([]types.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(c.path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to open %s", c.path)
	}
	defer file.Close()

	var rows []csvRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to parse %s", c.path)
	}

	bars := make([]types.Bar, 0, len(rows))
	missing := 0

	for _, row := range rows {
		bar := row.bar()
		if !c.filter.Keep(bar) {
			continue
		}

		if row.hasMissing() {
			missing++
		}

		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no bars found in %s", c.path)
	}

	if missing > 0 {
		c.logger.Warn("Bars with missing prices loaded as NaN", zap.String("path", c.path), zap.Int("bars", missing))
	}

	c.logger.Debug("Loaded bars from CSV", zap.String("path", c.path), zap.Int("rows", len(rows)), zap.Int("bars", len(bars)))

	return bars, nil
}

// Close implements BarSource.
func (c *CSVSource) Close() error {
	return nil
}

// csvPrice is a price cell where an empty value means missing.
type csvPrice float64

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (p *csvPrice) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*p = csvPrice(math.NaN())

		return nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}

	*p = csvPrice(v)

	return nil
}

type csvRow struct {
	Symbol string    `csv:"symbol"`
	Time   time.Time `csv:"time"`
	Open   csvPrice  `csv:"open"`
	High   csvPrice  `csv:"high"`
	Low    csvPrice  `csv:"low"`
	Close  csvPrice  `csv:"close"`
	Volume csvPrice  `csv:"volume"`
}

func (r csvRow) bar() types.Bar {
	return types.Bar{
		Symbol: r.Symbol,
		Time:   r.Time,
		Open:   float64(r.Open),
		High:   float64(r.High),
		Low:    float64(r.Low),
		Close:  float64(r.Close),
		Volume: float64(r.Volume),
	}
}

func (r csvRow) hasMissing() bool {
	for _, p := range []csvPrice{r.Open, r.High, r.Low, r.Close, r.Volume} {
		if math.IsNaN(float64(p)) {
			return true
		}
	}

	return false
}
