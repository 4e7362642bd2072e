package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/gamemenu/internal/ecs"
)

// Replayer plays back recorded pointer input.
// It implements system.PointerSource.
type Replayer struct {
	data  ReplayData
	frame int
	last  ecs.Cursor
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll returns the cursor for the current frame and advances.
// Once exhausted the pointer stays where it was last seen, released.
func (r *Replayer) Poll() ecs.Cursor {
	if r.Done() {
		return ecs.Cursor{X: r.last.X, Y: r.last.Y}
	}

	r.last = r.data.Frames[r.frame].Cursor()
	r.frame++
	return r.last
}

// NextSize returns the logical screen size the next frame was recorded at.
// Frames without a size fall back to the recording's header size.
func (r *Replayer) NextSize() (int, int) {
	i := r.frame
	if i >= len(r.data.Frames) {
		i = len(r.data.Frames) - 1
	}
	if i >= 0 {
		if fi := r.data.Frames[i]; fi.W > 0 && fi.H > 0 {
			return fi.W, fi.H
		}
	}
	return r.data.Width, r.data.Height
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.last = ecs.Cursor{}
}

// Recorder captures pointer input frame by frame
type Recorder struct {
	data ReplayData
}

// NewRecorder starts a recording for a screen of the given size
func NewRecorder(width, height int, web bool) *Recorder {
	return &Recorder{data: ReplayData{
		Version:   Version,
		Web:       web,
		Width:     width,
		Height:    height,
		StartTime: time.Now().Format(time.RFC3339),
	}}
}

// RecordFrame appends the pointer state of the next frame along with the
// logical screen size its coordinates refer to
func (r *Recorder) RecordFrame(c ecs.Cursor, screenW, screenH int) {
	r.data.Frames = append(r.data.Frames, frameFromCursor(len(r.data.Frames), c, screenW, screenH))
}

// Data returns the recording so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the recording as JSON
func (r *Recorder) Save(filename string) error {
	b, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to write replay %s: %w", filename, err)
	}
	return nil
}

// CreateTestReplayData creates replay data for testing (idle pointer)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Width:     800,
		Height:    600,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}

// Click appends a press and a release at (x, y), hovering first
func (d *ReplayData) Click(x, y int) {
	for _, fi := range []FrameInput{
		{MX: x, MY: y},
		{MX: x, MY: y, MD: true, JP: true},
		{MX: x, MY: y},
	} {
		fi.F = len(d.Frames)
		d.Frames = append(d.Frames, fi)
	}
}
