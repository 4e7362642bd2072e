package replay

import "github.com/younwookim/gamemenu/internal/ecs"

// Version is written into every recording
const Version = "1.0"

// FrameInput records pointer state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	MX int  `json:"mx"`           // PointerX
	MY int  `json:"my"`           // PointerY
	MD bool `json:"md,omitempty"` // PointerDown
	JP bool `json:"jp,omitempty"` // JustPressed
	W  int  `json:"w,omitempty"`  // ScreenWidth (0 = header size)
	H  int  `json:"h,omitempty"`  // ScreenHeight (0 = header size)
}

// ReplayData contains all data needed to replay a menu session
type ReplayData struct {
	Version   string       `json:"version"`
	Web       bool         `json:"web,omitempty"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Cursor converts the frame into the pointer state fed to the world
func (fi FrameInput) Cursor() ecs.Cursor {
	return ecs.Cursor{
		X:           float64(fi.MX),
		Y:           float64(fi.MY),
		Down:        fi.MD,
		JustPressed: fi.JP,
	}
}

func frameFromCursor(frame int, c ecs.Cursor, screenW, screenH int) FrameInput {
	return FrameInput{
		F:  frame,
		MX: int(c.X),
		MY: int(c.Y),
		MD: c.Down,
		JP: c.JustPressed,
		W:  screenW,
		H:  screenH,
	}
}
