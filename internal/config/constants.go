package config

import "time"

// Base application details
const AppName = "scribe"
const Version = "0.1.0"
const ConfigDirName = "scribe"
const DefaultThemeFileName = "theme.toml"   // Optional user theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "scribe.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editing defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true

// Runner defaults. The interpreter reads the program from stdin ("-").
const DefaultInterpreter = "python3"

// DefaultInterpreterArgs makes the interpreter read the program from its
// standard input stream rather than an argv element.
var DefaultInterpreterArgs = []string{"-"}
