package glint

// Theme names the tone colors the default formatter and the output
// stream draw from. Values are anything lipgloss accepts: hex strings
// or ANSI palette indexes.
type Theme struct {
	Name string

	Debug string // below Info
	Info  string // Info up to Warn
	Warn  string // Warn up to Error
	Error string // Error and above

	Muted string // right-justified metadata
}

// DefaultTheme is tuned for dark terminal backgrounds.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Debug: "#6C7086",
		Info:  "#74C7EC",
		Warn:  "#F9E2AF",
		Error: "#F38BA8",
		Muted: "#585B70",
	}
}

func (t Theme) isZero() bool {
	return t == Theme{}
}
