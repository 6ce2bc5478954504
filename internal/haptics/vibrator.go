// Package haptics defines the vibration boundary and a simulated device.
package haptics

import "go.uber.org/zap"

// Vibrator is the host vibration boundary. Pattern entries are millisecond
// durations, alternating vibration and pause.
type Vibrator interface {
	Vibrate(pattern []int) error
}

// SimulatedVibrator stands in for device hardware and logs each pattern.
type SimulatedVibrator struct {
	logger *zap.Logger
}

// NewSimulatedVibrator constructs the simulated device.
func NewSimulatedVibrator(logger *zap.Logger) *SimulatedVibrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedVibrator{logger: logger}
}

// Vibrate logs the requested pattern.
func (v *SimulatedVibrator) Vibrate(pattern []int) error {
	v.logger.Debug("vibration pattern", zap.Ints("pattern_ms", pattern))
	return nil
}
