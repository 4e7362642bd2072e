// Package audio plays UI sound effects through Ebitengine's audio context.
package audio

import (
	"encoding/binary"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

// SampleRate is the rate the audio context is opened with
const SampleRate = 48000

// Click sound shape
const (
	clickFrequency = 880.0 // Hz
	clickDuration  = 0.04  // seconds
	clickDecay     = 90.0  // exponential decay rate
)

// Manager owns the audio context and the UI sounds
type Manager struct {
	ctx      *audio.Context
	click    []byte
	settings *config.Settings
	logger   *log.Logger
}

// NewManager creates a manager over ctx. settings is read on every play,
// so volume and mute changes apply immediately.
func NewManager(ctx *audio.Context, settings *config.Settings, logger *log.Logger) *Manager {
	return &Manager{
		ctx:      ctx,
		click:    ClickPCM(ctx.SampleRate()),
		settings: settings,
		logger:   logger,
	}
}

// PlayClick plays the button click unless sound is disabled
func (m *Manager) PlayClick() {
	if !m.settings.SoundEnabled || m.settings.SoundVolume <= 0 {
		return
	}
	p := m.ctx.NewPlayerFromBytes(m.click)
	p.SetVolume(m.settings.SoundVolume)
	p.Play()
	m.logger.Debug("click", "volume", m.settings.SoundVolume)
}

// ClickPCM synthesizes a short decaying sine as 16-bit little endian stereo PCM
func ClickPCM(sampleRate int) []byte {
	n := int(float64(sampleRate) * clickDuration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2*math.Pi*clickFrequency*t) * math.Exp(-clickDecay*t)
		s := uint16(int16(v * 0.5 * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)   // left
		binary.LittleEndian.PutUint16(buf[i*4+2:], s) // right
	}
	return buf
}
