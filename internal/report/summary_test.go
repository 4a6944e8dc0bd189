package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) *Report {
	t.Helper()

	r, err := NewLoader(logrus.New()).Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	return r
}

func TestExtract_Fixture(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"k6_summary.json", "k6_summary.yaml"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := Extract(loadFixture(t, name))
			require.NoError(t, err)

			assert.InDeltaSlice(t, []float64{0.0123, 0.0051, 0.021, 12.5, 0.087, 12.608}, s.Timing.Values(), 1e-9)
			assert.InDeltaSlice(t, []float64{2.2, 10.5, 89.1, 20.4, 32.2}, s.Duration.Values(), 1e-9)
			assert.InDeltaSlice(t, []float64{1002.1, 1010.9, 1100.3, 1021.7, 1034.2}, s.Iteration.Values(), 1e-9)

			assert.InDelta(t, 300.0/30.0, s.Throughput.RequestsPerSecond(), 1e-9)
			assert.InDelta(t, 150.0/30.0, s.Throughput.IterationsPerSecond(), 1e-9)
			assert.InDelta(t, 3072000.0/1024/30.0, s.Throughput.ReceivedKBPerSecond(), 1e-9)
			assert.InDelta(t, 61440.0/1024/30.0, s.Throughput.SentKBPerSecond(), 1e-9)

			rate, err := s.Checks.SuccessRate()
			require.NoError(t, err)
			assert.InDelta(t, 95.0, rate, 1e-9)
		})
	}
}

func TestExtract_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		contains []string
	}{
		{
			name:     "missing metric",
			doc:      strings.Replace(minimalDoc, `"http_req_blocked": {"avg": 1},`, "", 1),
			contains: []string{`metric "http_req_blocked"`},
		},
		{
			name:     "missing percentile",
			doc:      strings.Replace(minimalDoc, `"p(95)": 9, "avg": 4`, `"avg": 4`, 1),
			contains: []string{`metric "http_req_duration": field "p(95)"`},
		},
		{
			name:     "missing checks fails",
			doc:      strings.Replace(minimalDoc, `"checks": {"passes": 95, "fails": 5}`, `"checks": {"passes": 95}`, 1),
			contains: []string{`metric "checks": field "fails"`},
		},
		{
			name: "several missing at once",
			doc: strings.Replace(
				strings.Replace(minimalDoc, `"data_sent": {"count": 2048},`, "", 1),
				`"iterations": {"count": 60},`, "", 1),
			contains: []string{`metric "data_sent"`, `metric "iterations"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewLoader(logrus.New()).Load(writeFile(t, "summary.json", tt.doc))
			require.NoError(t, err)

			_, err = Extract(r)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.NotContains(t, err.Error(), "\n")

			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestExtract_MissingMetricReportedOnce(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(minimalDoc, `"iteration_duration": {"min": 10, "med": 20, "max": 30, "p(90)": 25, "p(95)": 28},`, "", 1)

	r, err := NewLoader(logrus.New()).Load(writeFile(t, "summary.json", doc))
	require.NoError(t, err)

	_, err = Extract(r)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), `metric "iteration_duration"`))
}

func TestExtract_NonNumericField(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(minimalDoc, `"http_reqs": {"count": 90}`, `"http_reqs": {"count": "ninety"}`, 1)

	r, err := NewLoader(logrus.New()).Load(writeFile(t, "summary.json", doc))
	require.NoError(t, err)

	_, err = Extract(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), `metric "http_reqs": field "count"`)
}

func TestExtract_IntegerValues(t *testing.T) {
	t.Parallel()

	r, err := NewLoader(logrus.New()).Load(writeFile(t, "summary.json", minimalDoc))
	require.NoError(t, err)

	s, err := Extract(r)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, s.Throughput.RequestsPerSecond(), 1e-9)
	assert.InDelta(t, 2.0, s.Throughput.IterationsPerSecond(), 1e-9)
	assert.InDelta(t, 1.0, s.Timing.Blocked, 1e-9)
}

// minimalDoc populates exactly the fields the charts read.
const minimalDoc = `{
  "metrics": {
    "http_req_blocked": {"avg": 1},
    "http_req_connecting": {"avg": 2},
    "http_req_sending": {"avg": 0.5},
    "http_req_waiting": {"avg": 3},
    "http_req_receiving": {"avg": 0.25},
    "http_req_duration": {"min": 1, "med": 3, "max": 10, "p(90)": 8, "p(95)": 9, "avg": 4},
    "iteration_duration": {"min": 10, "med": 20, "max": 30, "p(90)": 25, "p(95)": 28},
    "http_reqs": {"count": 90},
    "iterations": {"count": 60},
    "data_received": {"count": 30720},
    "data_sent": {"count": 2048},
    "checks": {"passes": 95, "fails": 5}
  }
}`
