package ui

// Color accessors return the escape code of the corresponding category in
// the active theme. They are the only color API the CLI layer uses, so a
// theme switch takes effect everywhere at once.

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the info color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta returns the primary accent color code.
func ColorMagenta() string { return GetCurrentTheme().Primary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
