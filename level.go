package glint

import "strings"

// Level orders log events by severity. Progress sits below Debug so
// live bars can be silenced without touching diagnostic output.
type Level int

const (
	LevelProgress Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelProgress:
		return "progress"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Label is the display name used for the line prefix. Warn reads as
// the full word "Warning" on screen.
func (l Level) Label() string {
	switch l {
	case LevelProgress:
		return "Progress"
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelWarn:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return "Info"
	}
}

// ParseLevel maps a config string to a level, defaulting to Info for
// unknown input.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "progress":
		return LevelProgress
	case "debug":
		return LevelDebug
	case "info", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error", "fatal":
		return LevelError
	default:
		return LevelInfo
	}
}
