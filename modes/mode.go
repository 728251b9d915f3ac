package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment skips user and system config files and keeps logs on the terminal
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// LoadsConfigFiles reports whether configuration files outside the binary are read.
func (m Mode) LoadsConfigFiles() bool {
	return m == ModeProduction
}
