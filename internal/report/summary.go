package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrMissingField is returned when an expected metric or metric field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidField is returned when a field is present but not numeric.
	ErrInvalidField = errors.New("invalid field")
)

// Metric names read from the k6 summary.
const (
	MetricReqBlocked        = "http_req_blocked"
	MetricReqConnecting     = "http_req_connecting"
	MetricReqSending        = "http_req_sending"
	MetricReqWaiting        = "http_req_waiting"
	MetricReqReceiving      = "http_req_receiving"
	MetricReqDuration       = "http_req_duration"
	MetricIterationDuration = "iteration_duration"
	MetricReqs              = "http_reqs"
	MetricIterations        = "iterations"
	MetricDataReceived      = "data_received"
	MetricDataSent          = "data_sent"
	MetricChecks            = "checks"
)

// Field names inside a metric summary.
const (
	FieldAvg    = "avg"
	FieldMin    = "min"
	FieldMed    = "med"
	FieldMax    = "max"
	FieldP90    = "p(90)"
	FieldP95    = "p(95)"
	FieldCount  = "count"
	FieldPasses = "passes"
	FieldFails  = "fails"
)

// Summary holds every value the charts are drawn from.
type Summary struct {
	Timing     Timing
	Duration   Distribution
	Iteration  Distribution
	Throughput Throughput
	Checks     Checks
}

// Extract validates the report against the expected key set and builds a
// Summary. All missing or invalid fields are reported together.
func Extract(r *Report) (*Summary, error) {
	x := &extractor{metrics: r.Metrics()}

	s := &Summary{
		Timing: Timing{
			Blocked:    x.float(MetricReqBlocked, FieldAvg),
			Connecting: x.float(MetricReqConnecting, FieldAvg),
			Sending:    x.float(MetricReqSending, FieldAvg),
			Waiting:    x.float(MetricReqWaiting, FieldAvg),
			Receiving:  x.float(MetricReqReceiving, FieldAvg),
			Duration:   x.float(MetricReqDuration, FieldAvg),
		},
		Duration:  x.distribution(MetricReqDuration),
		Iteration: x.distribution(MetricIterationDuration),
		Throughput: Throughput{
			Requests:      x.float(MetricReqs, FieldCount),
			Iterations:    x.float(MetricIterations, FieldCount),
			DataReceived:  x.float(MetricDataReceived, FieldCount),
			DataSent:      x.float(MetricDataSent, FieldCount),
			WindowSeconds: ThroughputWindow,
		},
		Checks: Checks{
			Passes: x.float(MetricChecks, FieldPasses),
			Fails:  x.float(MetricChecks, FieldFails),
		},
	}

	if x.errs != nil {
		x.errs.ErrorFormat = singleLine
		return nil, x.errs
	}

	return s, nil
}

type extractor struct {
	metrics map[string]any
	errs    *multierror.Error
	// missing metrics are reported once, not once per field
	seen map[string]bool
}

func (x *extractor) distribution(metric string) Distribution {
	return Distribution{
		Min: x.float(metric, FieldMin),
		Med: x.float(metric, FieldMed),
		Max: x.float(metric, FieldMax),
		P90: x.float(metric, FieldP90),
		P95: x.float(metric, FieldP95),
	}
}

func (x *extractor) float(metric, field string) float64 {
	raw, ok := x.metrics[metric]
	if !ok {
		x.failOnce(metric, fmt.Errorf("%w: metric %q", ErrMissingField, metric))
		return 0
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		x.failOnce(metric, fmt.Errorf("%w: metric %q is %T, not a mapping", ErrInvalidField, metric, raw))
		return 0
	}

	v, ok := fields[field]
	if !ok {
		x.errs = multierror.Append(x.errs, fmt.Errorf("%w: metric %q: field %q", ErrMissingField, metric, field))
		return 0
	}

	f, err := toFloat(v)
	if err != nil {
		x.errs = multierror.Append(x.errs, fmt.Errorf("%w: metric %q: field %q: %w", ErrInvalidField, metric, field, err))
		return 0
	}

	return f
}

func (x *extractor) failOnce(metric string, err error) {
	if x.seen == nil {
		x.seen = make(map[string]bool)
	}

	if x.seen[metric] {
		return
	}
	x.seen[metric] = true

	x.errs = multierror.Append(x.errs, err)
}

// toFloat accepts the numeric types produced by the JSON and YAML decoders.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%v (%T) is not a number", v, v)
	}
}

// singleLine keeps aggregated errors on the one "Error:" line the CLI prints.
func singleLine(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "; ")
}
