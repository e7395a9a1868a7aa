package appcfg

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultMusicPath = "CUTEDEPRESSED.mp3"
	DefaultVolume    = 1.0
	DefaultLogLevel  = "info"
)

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Config is everything the client reads from the environment at startup.
type Config struct {
	MusicPath string  // HEARTECHO_MUSIC
	Volume    float64 // HEARTECHO_VOLUME, clamped to 0..1
	LogLevel  string  // HEARTECHO_LOG_LEVEL
}

// Load reads the HEARTECHO_* variables. Unparseable values fall back to the defaults.
func Load() Config {
	return Config{
		MusicPath: getenv("HEARTECHO_MUSIC", DefaultMusicPath),
		Volume:    parseVolume(getenv("HEARTECHO_VOLUME", "")),
		LogLevel:  strings.ToLower(getenv("HEARTECHO_LOG_LEVEL", DefaultLogLevel)),
	}
}

func parseVolume(s string) float64 {
	if s == "" {
		return DefaultVolume
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return DefaultVolume
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
