package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Source yields raw override values by dotted key ("places.api_key").
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource is a Source over a plain map, used in tests and for fixed overrides.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Env resolves a key against a Source, returning the override when it is
// present and non-empty and the fallback otherwise.
type Env struct {
	src Source
}

func NewEnv(src Source) Env {
	return Env{src: src}
}

func (e Env) lookup(key string) (string, bool) {
	if e.src == nil {
		return "", false
	}
	raw, ok := e.src.Lookup(key)
	if !ok {
		return "", false
	}
	if strings.Contains(raw, "${") {
		raw = os.ExpandEnv(raw)
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func (e Env) String(key, fallback string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return fallback
}

func (e Env) Float(key string, fallback float64) float64 {
	if v, ok := e.lookup(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func (e Env) Int(key string, fallback int) int {
	if v, ok := e.lookup(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func (e Env) Bool(key string, fallback bool) bool {
	if v, ok := e.lookup(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Seconds reads an integer number of seconds.
func (e Env) Seconds(key string, fallback time.Duration) time.Duration {
	if v, ok := e.lookup(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
