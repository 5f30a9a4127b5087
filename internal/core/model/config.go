package model

// StopwatchConfig contains runtime settings for the stopwatch engine.
type StopwatchConfig struct {
	// ClearLapsResetsBoundary makes ClearLaps also forget the last lap
	// boundary, so the next split is measured from zero.
	ClearLapsResetsBoundary bool
}
