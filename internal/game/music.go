package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Music is a looping background track. A nil *Music is valid and silent.
type Music struct {
	path   string
	player *audio.Player
	started bool
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

type decodeFunc func(sampleRate int, src io.Reader) (stream, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return func(sr int, src io.Reader) (stream, error) { return mp3.DecodeWithSampleRate(sr, src) }, nil
	case ".ogg":
		return func(sr int, src io.Reader) (stream, error) { return vorbis.DecodeWithSampleRate(sr, src) }, nil
	case ".wav":
		return func(sr int, src io.Reader) (stream, error) { return wav.DecodeWithSampleRate(sr, src) }, nil
	default:
		return nil, fmt.Errorf("music: unsupported format %q", ext)
	}
}

// audioContext returns the process-wide context; ebiten allows only one.
func audioContext() *audio.Context {
	if c := audio.CurrentContext(); c != nil {
		return c
	}
	return audio.NewContext(sampleRate)
}

// OpenMusic decodes the file at path into an endlessly looping player.
// It does not start playback.
func OpenMusic(ctx *audio.Context, path string) (*Music, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("music: read %s: %w", path, err)
	}
	if ctx == nil {
		return nil, fmt.Errorf("music: no audio context")
	}
	s, err := decode(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("music: decode %s: %w", path, err)
	}
	p, err := ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("music: player %s: %w", path, err)
	}
	return &Music{path: path, player: p}, nil
}

func (m *Music) Play(volume float64) {
	if m == nil || m.player == nil {
		return
	}
	m.player.SetVolume(volume)
	m.player.Play()
	m.started = true
}

// Update is the per-frame hook. ebiten pulls samples on its own goroutine,
// so all that is left is resuming a player that stopped after Play.
func (m *Music) Update() {
	if m == nil || m.player == nil || !m.started {
		return
	}
	if !m.player.IsPlaying() {
		m.player.Play()
	}
}

func (m *Music) Playing() bool {
	return m != nil && m.player != nil && m.player.IsPlaying()
}

// Close releases the player. Safe to call more than once.
func (m *Music) Close() error {
	if m == nil || m.player == nil {
		return nil
	}
	err := m.player.Close()
	m.player = nil
	if err != nil {
		return fmt.Errorf("music: close %s: %w", m.path, err)
	}
	return nil
}
