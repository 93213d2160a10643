package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Field helpers for the detection engine's common dimensions
func Component(name string) Field {
	return String("component", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Phase(n int) Field {
	return Int("phase", n)
}

func Pass(n int) Field {
	return Int("pass", n)
}

func Strategy(name string) Field {
	return String("strategy", name)
}

func Vertices(n int) Field {
	return Int("vertices", n)
}

func Communities(n int) Field {
	return Int("communities", n)
}

func Moves(n int) Field {
	return Int("moves", n)
}

func Modularity(q float64) Field {
	return Float64("modularity", q)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
