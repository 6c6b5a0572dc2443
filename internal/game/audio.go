package game

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/karolinemerino/PacMan/internal/config"
)

const sampleRate = 44100

type clip struct {
	raw []byte
}

// AudioManager plays one short clip per game event. With audio disabled it
// holds no context and every Play call is a no-op.
type AudioManager struct {
	ctx        *audio.Context
	chomp      *clip
	powerUp    *clip
	ghostEaten *clip
	death      *clip
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func sharedContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

func NewAudioManager(cfg config.AudioConfig) *AudioManager {
	if !cfg.Enabled {
		return &AudioManager{}
	}
	dir := cfg.SoundsDir
	if dir == "" {
		dir = "assets/sounds"
	}
	return &AudioManager{
		ctx:        sharedContext(),
		chomp:      loadClip(dir, "chomp.wav", 60, 880),
		powerUp:    loadClip(dir, "power.wav", 150, 660),
		ghostEaten: loadClip(dir, "ghost.wav", 200, 440),
		death:      loadClip(dir, "death.wav", 400, 220),
	}
}

// loadClip reads dir/file, falling back to a synthesized beep.
func loadClip(dir, file string, beepMs int, freq float64) *clip {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil || len(b) == 0 {
		return &clip{raw: synthBeepWAV(sampleRate, beepMs, freq)}
	}
	return &clip{raw: b}
}

func (am *AudioManager) play(c *clip) {
	if am == nil || am.ctx == nil || c == nil {
		return
	}
	// A fresh decoder per play lets clips overlap.
	stream, err := wav.DecodeF32(bytes.NewReader(c.raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayerF32(stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayChomp()      { am.play(am.chomp) }
func (am *AudioManager) PlayPowerUp()    { am.play(am.powerUp) }
func (am *AudioManager) PlayGhostEaten() { am.play(am.ghostEaten) }
func (am *AudioManager) PlayDeath()      { am.play(am.death) }

// synthBeepWAV returns a 16-bit PCM mono WAV holding a sine tone.
func synthBeepWAV(rate int, durationMs int, freq float64) []byte {
	n := rate * durationMs / 1000
	dataSize := n * 2
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16)
	putLE16(buf[20:22], 1) // PCM
	putLE16(buf[22:24], 1) // mono
	putLE32(buf[24:28], uint32(rate))
	putLE32(buf[28:32], uint32(rate*2))
	putLE16(buf[32:34], 2)
	putLE16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	for i := 0; i < n; i++ {
		s := math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
		putLE16(buf[44+i*2:], uint16(int16(s*32767*amp)))
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
