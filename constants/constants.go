package constants

import (
	"os"
	"strconv"
	"strings"
)

func getInt(name string, fallback int) int {
	val := os.Getenv(name)
	if val == "" {
		return fallback
	}
	res, err := strconv.Atoi(val)
	if err != nil {
		panic(name + " must be an integer: " + err.Error())
	}
	return res
}

// GetDefaultOctave is the octave chords are built in when none is given.
func GetDefaultOctave() int {
	return getInt("TONAL_DEFAULT_OCTAVE", 5)
}

func GetAddr() string {
	addr := os.Getenv("TONAL_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetCacheSize() int {
	return getInt("TONAL_CACHE_SIZE", 1024)
}

func GetAllowedOrigins() []string {
	val := os.Getenv("TONAL_ALLOWED_ORIGINS")
	if val == "" {
		return []string{"*"}
	}
	var res []string
	for _, origin := range strings.Split(val, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			res = append(res, origin)
		}
	}
	return res
}

const RequestIDHeader = "X-Request-Id"
