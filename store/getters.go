package store

import (
	"time"

	"github.com/spf13/cast"
)

// Typed getters mirror [Store.GetDefault]: each resolves key against the
// current namespace, casts the value to the target type, and falls back to
// def when the key is missing or the value cannot be cast. They never fail.

// GetString returns the string at key, or def.
func (s *Store) GetString(key, def string) string {
	val, err := s.Get(key)
	if err != nil {
		return def
	}

	str, err := cast.ToStringE(val)
	if err != nil {
		return def
	}

	return str
}

// GetBool returns the bool at key, or def. String values parse the way
// strconv.ParseBool does, so INI-sourced "true"/"false" cast cleanly.
func (s *Store) GetBool(key string, def bool) bool {
	val, err := s.Get(key)
	if err != nil {
		return def
	}

	b, err := cast.ToBoolE(val)
	if err != nil {
		return def
	}

	return b
}

// GetInt returns the int at key, or def.
func (s *Store) GetInt(key string, def int) int {
	val, err := s.Get(key)
	if err != nil {
		return def
	}

	i, err := cast.ToIntE(val)
	if err != nil {
		return def
	}

	return i
}

// GetFloat64 returns the float64 at key, or def.
func (s *Store) GetFloat64(key string, def float64) float64 {
	val, err := s.Get(key)
	if err != nil {
		return def
	}

	f, err := cast.ToFloat64E(val)
	if err != nil {
		return def
	}

	return f
}

// GetDuration returns the duration at key, or def. String values accept the
// time.ParseDuration syntax (e.g. "30s", "1h").
func (s *Store) GetDuration(key string, def time.Duration) time.Duration {
	val, err := s.Get(key)
	if err != nil {
		return def
	}

	d, err := cast.ToDurationE(val)
	if err != nil {
		return def
	}

	return d
}

// GetStringSlice returns the []string at key, or def.
func (s *Store) GetStringSlice(key string, def []string) []string {
	val, err := s.Get(key)
	if err != nil {
		return def
	}

	slice, err := cast.ToStringSliceE(val)
	if err != nil {
		return def
	}

	return slice
}
