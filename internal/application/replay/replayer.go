package replay

import (
	"time"

	"github.com/younwookim/sharkie/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the input and time step of the current frame and advances
func (r *Replayer) Next() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.InputState(), fi.Dt, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: frames of the
// same held input at a fixed 60 Hz step.
func CreateTestReplayData(frames int, in system.InputState) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Level:     "level1",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}
	for i := 0; i < frames; i++ {
		data.Frames[i] = NewFrameInput(i, 1000.0/60.0, in)
	}
	return data
}
