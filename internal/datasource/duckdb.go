package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-ta/internal/logger"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
	"go.uber.org/zap"
)

const barsView = "bars"

// DuckDBSource reads bars from parquet (or CSV) files through DuckDB.
type DuckDBSource struct {
	db     *sql.DB
	filter Filter
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBSource opens a DuckDB database at path (":memory:" for a transient one).
// Initialize must be called before Load.
func NewDuckDBSource(path string, filter Filter, log *logger.Logger) (*DuckDBSource, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	if _, err := db.Exec(`SET threads=4;`); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to configure duckdb", err)
	}

	return &DuckDBSource{
		db:     db,
		filter: filter,
		logger: log,
		sq:     newStatementBuilder(),
	}, nil
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Initialize points the bars view at a data file. Files ending in .csv are
// read with read_csv_auto, everything else as parquet.
func (d *DuckDBSource) Initialize(path string) error {
	d.logger.Debug("Initializing DuckDB source", zap.String("path", path))

	if _, err := d.db.Exec(`DROP VIEW IF EXISTS ` + barsView + `;`); err != nil {
		return errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to drop existing view", err)
	}

	reader := "read_parquet"
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		reader = "read_csv_auto"
	}

	// CREATE VIEW does not take bind parameters
	escaped := strings.ReplaceAll(path, "'", "''")
	query := fmt.Sprintf(`CREATE VIEW %s AS SELECT * FROM %s('%s');`, barsView, reader, escaped)

	if _, err := d.db.Exec(query); err != nil {
		return errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to read %s", path)
	}

	return nil
}

func (d *DuckDBSource) buildQuery() (string, []any, error) {
	query := d.sq.
		Select("time", "symbol", "open", "high", "low", "close", "volume").
		From(barsView).
		OrderBy("time ASC")

	if d.filter.Symbol.IsSome() {
		query = query.Where(squirrel.Eq{"symbol": d.filter.Symbol.Unwrap()})
	}

	if d.filter.Start.IsSome() {
		query = query.Where(squirrel.GtOrEq{"time": d.filter.Start.Unwrap()})
	}

	if d.filter.End.IsSome() {
		query = query.Where(squirrel.LtOrEq{"time": d.filter.End.Unwrap()})
	}

	return query.ToSql()
}

// Load implements BarSource.
func (d *DuckDBSource) Load(ctx context.Context) ([]types.Bar, error) {
	query, args, err := d.buildQuery()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query bars", err)
	}
	defer rows.Close()

	bars := make([]types.Bar, 0, 1000)

	for rows.Next() {
		var (
			timestamp                      time.Time
			open, high, low, close, volume sql.NullFloat64
			symbol                         string
		)

		if err := rows.Scan(&timestamp, &symbol, &open, &high, &low, &close, &volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan row", err)
		}

		bars = append(bars, types.Bar{
			Symbol: symbol,
			Time:   timestamp,
			Open:   nullToNaN(open),
			High:   nullToNaN(high),
			Low:    nullToNaN(low),
			Close:  nullToNaN(close),
			Volume: nullToNaN(volume),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating rows", err)
	}

	if len(bars) == 0 {
		return nil, errors.New(errors.ErrCodeNoDataFound, "no bars matched the filter")
	}

	d.logger.Debug("Loaded bars from DuckDB", zap.Int("bars", len(bars)))

	return bars, nil
}

// Close implements BarSource.
func (d *DuckDBSource) Close() error {
	return d.db.Close()
}
