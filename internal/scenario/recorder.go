package scenario

import "fmt"

// Recorder captures a per-frame series of named values from a headless run,
// for storage, plotting, and export.
type Recorder struct {
	Columns []string
	Rows    [][]float64
}

// NewRecorder creates a recorder for the given column names.
func NewRecorder(columns ...string) *Recorder {
	return &Recorder{Columns: columns}
}

// Record appends one frame of values. The value count must match the column
// count.
func (r *Recorder) Record(values ...float64) error {
	if len(values) != len(r.Columns) {
		return fmt.Errorf("recorded %d values for %d columns", len(values), len(r.Columns))
	}
	row := make([]float64, len(values))
	copy(row, values)
	r.Rows = append(r.Rows, row)
	return nil
}

// Column returns the series for one column name, or nil if unknown.
func (r *Recorder) Column(name string) []float64 {
	idx := -1
	for i, c := range r.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	series := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		series[i] = row[idx]
	}
	return series
}

// HammerColumns are the recorded fields of a hammer run.
var HammerColumns = []string{"phase", "angle", "depth", "max_depth", "force"}

// Sample returns the hammer fields in HammerColumns order.
func (h *Hammer) Sample() []float64 {
	return []float64{float64(h.Phase), h.Angle, h.NailDepth, h.MaxDepth, h.ForceMagnitude}
}

// OrbitColumns are the recorded fields of an orbit run.
var OrbitColumns = []string{"phase", "angle", "distance", "velocity", "force", "x", "y"}

// Sample returns the orbit fields in OrbitColumns order.
func (o *Orbit) Sample() []float64 {
	return []float64{float64(o.Phase), o.Angle, o.Distance, o.Velocity, o.Force, o.MoonX, o.MoonY}
}
