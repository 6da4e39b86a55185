package game

import "time"

// DiagnosticPath identifies a diagnostic in the store.
type DiagnosticPath string

const (
	DiagnosticFPS       DiagnosticPath = "fps"
	DiagnosticFrameTime DiagnosticPath = "frame_time"
)

const (
	defaultHistoryLen = 20
)

// Diagnostic keeps a bounded history of measurements and an exponential
// moving average over them.
type Diagnostic struct {
	Path       DiagnosticPath
	history    []float64
	maxHistory int
	ema        float64
	hasEMA     bool
	smoothing  float64
}

// NewDiagnostic creates a diagnostic with a history of historyLen samples.
// The EMA smoothing factor is 2/(historyLen+1).
func NewDiagnostic(path DiagnosticPath, historyLen int) *Diagnostic {
	if historyLen < 1 {
		historyLen = 1
	}
	return &Diagnostic{
		Path:       path,
		maxHistory: historyLen,
		smoothing:  2.0 / float64(historyLen+1),
	}
}

// Add records a measurement.
func (d *Diagnostic) Add(value float64) {
	if d.hasEMA {
		d.ema += (value - d.ema) * d.smoothing
	} else {
		d.ema = value
		d.hasEMA = true
	}
	d.history = append(d.history, value)
	if len(d.history) > d.maxHistory {
		d.history = d.history[1:]
	}
}

// Value returns the latest measurement.
func (d *Diagnostic) Value() (float64, bool) {
	if len(d.history) == 0 {
		return 0, false
	}
	return d.history[len(d.history)-1], true
}

// Smoothed returns the moving average, or false before the first measurement.
func (d *Diagnostic) Smoothed() (float64, bool) {
	return d.ema, d.hasEMA
}

// Average returns the plain mean over the retained history.
func (d *Diagnostic) Average() (float64, bool) {
	if len(d.history) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range d.history {
		sum += v
	}
	return sum / float64(len(d.history)), true
}

// Diagnostics is the store the HUD reads from.
type Diagnostics struct {
	entries    map[DiagnosticPath]*Diagnostic
	frameCount uint64
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{entries: make(map[DiagnosticPath]*Diagnostic)}
}

// Register adds a diagnostic, replacing any with the same path.
func (s *Diagnostics) Register(d *Diagnostic) {
	s.entries[d.Path] = d
}

func (s *Diagnostics) Get(path DiagnosticPath) (*Diagnostic, bool) {
	d, ok := s.entries[path]
	return d, ok
}

// FrameCount is the number of frames recorded through RecordFrame.
func (s *Diagnostics) FrameCount() uint64 {
	return s.frameCount
}

// NewFrameTimeDiagnostics returns a store with FPS and frame time registered.
func NewFrameTimeDiagnostics() *Diagnostics {
	s := NewDiagnostics()
	s.Register(NewDiagnostic(DiagnosticFPS, defaultHistoryLen))
	s.Register(NewDiagnostic(DiagnosticFrameTime, defaultHistoryLen))
	return s
}

// RecordFrame records one frame of the given wall-clock duration. A zero
// duration counts the frame but produces no FPS sample.
func (s *Diagnostics) RecordFrame(delta time.Duration) {
	s.frameCount++
	if delta <= 0 {
		return
	}
	if d, ok := s.entries[DiagnosticFrameTime]; ok {
		d.Add(float64(delta) / float64(time.Millisecond))
	}
	if d, ok := s.entries[DiagnosticFPS]; ok {
		d.Add(1 / delta.Seconds())
	}
}
