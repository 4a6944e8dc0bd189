package config

const (
	// DefaultOutputDir is where rendered charts are written when nothing else is configured.
	DefaultOutputDir = "."
	// DefaultDPI is the raster resolution of every rendered chart.
	DefaultDPI = 300
	// DefaultLogLevel keeps normal runs quiet on stderr.
	DefaultLogLevel = "warn"
	// ResultsFileName is the multi-panel summary image.
	ResultsFileName = "k6_test_results.png"
	// IterationFileName is the iteration duration image.
	IterationFileName = "iteration_duration.png"
	// ProgramName is the binary name shown in usage output.
	ProgramName = "k6viz"
)
