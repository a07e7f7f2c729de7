package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	LogLevel string

	// Seed and export
	ImportFile   string
	ImportName   string
	ExportPath   string
	ExportFormat string

	// Window
	WindowWidth  float32
	WindowHeight float32
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:     "info",
		ExportFormat: "apkg",
		WindowWidth:  420,
		WindowHeight: 640,
	}
}

// Headless reports whether the flags ask for an import/export run without
// opening a window.
func (f *Flags) Headless() bool {
	return f.ImportFile != "" && f.ExportPath != ""
}
