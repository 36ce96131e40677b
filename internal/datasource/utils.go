package datasource

import (
	"database/sql"
	"math"
)

// nullToNaN maps SQL NULL prices to the NaN missing-value marker.
func nullToNaN(value sql.NullFloat64) float64 {
	if !value.Valid {
		return math.NaN()
	}

	return value.Float64
}
