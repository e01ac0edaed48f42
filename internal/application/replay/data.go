package replay

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/sharkie/internal/application/system"
	"github.com/younwookim/sharkie/internal/domain/entity"
)

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F    int     `msgpack:"f"`            // Frame number
	Dt   float64 `msgpack:"dt"`           // Simulation ms since the previous frame
	L    bool    `msgpack:"l,omitempty"`  // Left
	R    bool    `msgpack:"r,omitempty"`  // Right
	U    bool    `msgpack:"u,omitempty"`  // Up
	D    bool    `msgpack:"d,omitempty"`  // Down
	Slap bool    `msgpack:"s,omitempty"`  // FinSlap
	PB   bool    `msgpack:"pb,omitempty"` // BubblePoisoned
	B    bool    `msgpack:"b,omitempty"`  // BubblePlain
	P    bool    `msgpack:"p,omitempty"`  // Pause
	RS   bool    `msgpack:"rs,omitempty"` // Restart
	HB   bool    `msgpack:"hb,omitempty"` // ToggleHitboxes
}

// NewFrameInput captures one frame of input
func NewFrameInput(frame int, dtMs float64, in system.InputState) FrameInput {
	return FrameInput{
		F:    frame,
		Dt:   dtMs,
		L:    in.Move.Left,
		R:    in.Move.Right,
		U:    in.Move.Up,
		D:    in.Move.Down,
		Slap: in.FinSlap,
		PB:   in.BubblePoisoned,
		B:    in.BubblePlain,
		P:    in.Pause,
		RS:   in.Restart,
		HB:   in.ToggleHitboxes,
	}
}

// InputState expands the frame back into an input state
func (fi FrameInput) InputState() system.InputState {
	return system.InputState{
		Move:           entity.Input{Left: fi.L, Right: fi.R, Up: fi.U, Down: fi.D},
		FinSlap:        fi.Slap,
		BubblePoisoned: fi.PB,
		BubblePlain:    fi.B,
		Pause:          fi.P,
		Restart:        fi.RS,
		ToggleHitboxes: fi.HB,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version    string       `msgpack:"version"`
	Seed       int64        `msgpack:"seed"`
	Level      string       `msgpack:"level"`
	Difficulty string       `msgpack:"difficulty"`
	StartTime  string       `msgpack:"startTime"`
	Frames     []FrameInput `msgpack:"frames"`
}

// Encode writes data as msgpack
func Encode(w io.Writer, data ReplayData) error {
	if err := msgpack.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads msgpack replay data
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := msgpack.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}
