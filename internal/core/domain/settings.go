package domain

const (
	// LogFormatPretty renders human-readable, colored log lines.
	LogFormatPretty = "pretty"
	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON = "json"

	// OutputModeAuto picks the TUI on an interactive terminal and linear output elsewhere.
	OutputModeAuto = "auto"
	// OutputModeTUI renders an interactive step list.
	OutputModeTUI = "tui"
	// OutputModeLinear prints one line per pipeline step.
	OutputModeLinear = "linear"
	// OutputModeQuiet suppresses step progress.
	OutputModeQuiet = "quiet"
)

// Settings holds the invocation settings of a run.
type Settings struct {
	Root       string `koanf:"root"`
	Manifest   string `koanf:"manifest"`
	LogFormat  string `koanf:"log-format"`
	OutputMode string `koanf:"output-mode"`
}

// DefaultSettings returns the settings used when nothing overrides them.
func DefaultSettings() Settings {
	return Settings{
		Root:       ".",
		LogFormat:  LogFormatPretty,
		OutputMode: OutputModeAuto,
	}
}
