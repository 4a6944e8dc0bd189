package report

import (
	"errors"
)

// ThroughputWindow is the assumed load test duration in seconds. It is not
// read from the summary, so rates are only correct for 30 second runs.
const ThroughputWindow = 30.0

// ErrNoChecks is returned when the summary recorded no checks at all.
var ErrNoChecks = errors.New("cannot compute check success rate: passes + fails is zero")

// Timing holds the average duration of each HTTP request phase, in ms.
type Timing struct {
	Blocked    float64
	Connecting float64
	Sending    float64
	Waiting    float64
	Receiving  float64
	Duration   float64
}

// Labels returns the bar labels in chart order.
func (t Timing) Labels() []string {
	return []string{"blocked", "connecting", "sending", "waiting", "receiving", "duration"}
}

// Values returns the averages in the same order as Labels.
func (t Timing) Values() []float64 {
	return []float64{t.Blocked, t.Connecting, t.Sending, t.Waiting, t.Receiving, t.Duration}
}

// Distribution holds the summary statistics of a trend metric.
type Distribution struct {
	Min float64
	Med float64
	Max float64
	P90 float64
	P95 float64
}

// Labels returns the bar labels in chart order.
func (d Distribution) Labels() []string {
	return []string{"min", "med", "max", "p90", "p95"}
}

// Values returns the statistics in the same order as Labels.
func (d Distribution) Values() []float64 {
	return []float64{d.Min, d.Med, d.Max, d.P90, d.P95}
}

// Throughput holds raw counters; rates are derived over WindowSeconds.
type Throughput struct {
	Requests      float64
	Iterations    float64
	DataReceived  float64 // bytes
	DataSent      float64 // bytes
	WindowSeconds float64
}

// RequestsPerSecond is http_reqs per second.
func (t Throughput) RequestsPerSecond() float64 {
	return t.Requests / t.WindowSeconds
}

// IterationsPerSecond is iterations per second.
func (t Throughput) IterationsPerSecond() float64 {
	return t.Iterations / t.WindowSeconds
}

// ReceivedKBPerSecond is data received in KB per second.
func (t Throughput) ReceivedKBPerSecond() float64 {
	return t.DataReceived / 1024 / t.WindowSeconds
}

// SentKBPerSecond is data sent in KB per second.
func (t Throughput) SentKBPerSecond() float64 {
	return t.DataSent / 1024 / t.WindowSeconds
}

// Labels returns the bar labels in chart order.
func (t Throughput) Labels() []string {
	return []string{"HTTP Requests/s", "Iterations/s", "Data Received (KB/s)", "Data Sent (KB/s)"}
}

// Values returns the rates in the same order as Labels.
func (t Throughput) Values() []float64 {
	return []float64{
		t.RequestsPerSecond(),
		t.IterationsPerSecond(),
		t.ReceivedKBPerSecond(),
		t.SentKBPerSecond(),
	}
}

// Checks holds the aggregated check outcomes.
type Checks struct {
	Passes float64
	Fails  float64
}

// Total is passes plus fails.
func (c Checks) Total() float64 {
	return c.Passes + c.Fails
}

// SuccessRate is the percentage of passed checks.
func (c Checks) SuccessRate() (float64, error) {
	if c.Total() == 0 {
		return 0, ErrNoChecks
	}

	return c.Passes / c.Total() * 100, nil
}

// FailureRate is 100 minus the success rate.
func (c Checks) FailureRate() (float64, error) {
	rate, err := c.SuccessRate()
	if err != nil {
		return 0, err
	}

	return 100 - rate, nil
}
