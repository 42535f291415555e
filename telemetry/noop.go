package telemetry

import "io"

// noOpCollector is returned by FromContext when no collector is installed.
// All methods do nothing.
type noOpCollector struct{}

func (noOpCollector) NodeVisited()     {}
func (noOpCollector) EditApplied()     {}
func (noOpCollector) LineShift(int)    {}
func (noOpCollector) Report(io.Writer) {}
