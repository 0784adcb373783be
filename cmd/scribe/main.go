// cmd/scribe/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"
	"path/filepath"

	"github.com/scribe-editor/scribe/internal/app"
	"github.com/scribe-editor/scribe/internal/config"
	"github.com/scribe-editor/scribe/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s version %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}

	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		// Bad config file: keep going on defaults, but tell the user
		stlog.Printf("Warning: %v (continuing with defaults)", err)
	}

	// --- Logger Initialization ---
	// Logs never go to stdout; the terminal belongs to the editor. "-"
	// selects stderr, anything else is a file path.
	var logOutput io.Writer = io.Discard
	var logFile *os.File
	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		if configDir, dirErr := os.UserConfigDir(); dirErr == nil {
			logPath = filepath.Join(configDir, config.ConfigDirName, config.DefaultLogFileName)
		}
	}
	if logPath == "-" {
		logOutput = os.Stderr
	} else if logPath != "" {
		if mkErr := os.MkdirAll(filepath.Dir(logPath), 0o755); mkErr == nil {
			logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
			if err == nil {
				logOutput = logFile
				defer logFile.Close()
			} else {
				stlog.Printf("Warning: cannot open log file '%s': %v (logging disabled)", logPath, err)
			}
		}
	}

	logger.Init(cfg.Logger, logOutput)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	logger.Infof("Starting %s...", config.AppName)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	scribeApp, err := app.NewApp(filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		stlog.Fatalf("Error initializing application: %v", err)
	}

	if err := scribeApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
