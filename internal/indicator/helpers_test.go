package indicator_test

import (
	"math"

	"github.com/rxtech-lab/argo-ta/internal/series"
	"github.com/rxtech-lab/argo-ta/mocks"
	"github.com/stretchr/testify/suite"
)

func generatedColumns(count int, seed int64) series.Columns {
	config := mocks.DefaultConfig()
	config.Count = count

	return series.FromBars(mocks.NewDataGenerator(seed).Generate(config))
}

// columnsFromHLC builds columns from high/low/close triples.
func columnsFromHLC(rows [][3]float64) series.Columns {
	c := series.Columns{
		Open:  make([]float64, len(rows)),
		High:  make([]float64, len(rows)),
		Low:   make([]float64, len(rows)),
		Close: make([]float64, len(rows)),
	}

	for i, row := range rows {
		c.High[i], c.Low[i], c.Close[i] = row[0], row[1], row[2]
		c.Open[i] = row[2]
	}

	return c
}

func assertSeries(s *suite.Suite, expected, actual []float64, delta float64) {
	s.Require().Len(actual, len(expected))

	for i := range expected {
		if math.IsNaN(expected[i]) {
			s.True(math.IsNaN(actual[i]), "index %d: expected NaN, got %v", i, actual[i])

			continue
		}

		s.InDelta(expected[i], actual[i], delta, "index %d", i)
	}
}

// assertWarmup checks that values are NaN before first and finite from first on.
func assertWarmup(s *suite.Suite, values []float64, first int) {
	for i, v := range values {
		if i < first {
			s.True(math.IsNaN(v), "index %d should be NaN, got %v", i, v)
		} else {
			s.False(math.IsNaN(v) || math.IsInf(v, 0), "index %d should be finite, got %v", i, v)
		}
	}
}

// assertOracle compares against a talib output from index first on.
func assertOracle(s *suite.Suite, expected, actual []float64, first int, delta float64) {
	s.Require().Len(actual, len(expected))

	for i := first; i < len(expected); i++ {
		s.InDelta(expected[i], actual[i], delta, "index %d", i)
	}
}
