package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"notebox/config"
	"notebox/editor"
	"notebox/export"
	"notebox/scene"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive TUI mode")
		help        = flag.Bool("help", false, "Show help")

		// Export flags
		format     = flag.String("format", "json", "Export format: json, d2")
		outputFile = flag.String("o", "", "Output file (default: stdout)")

		// Tuning and logging
		configFile = flag.String("config", "", "TOML tuning file overriding the layout defaults")
		logFile    = flag.String("log", "", "Write a debug log to this file (TUI mode)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [scene.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A nested-container note canvas with automatic layout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                       # Start an empty interactive canvas\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i scene.json         # Edit a saved scene\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format d2 scene.json # Export a scene to D2\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format d2 -o out.d2 scene.json\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var filename string
	if args := flag.Args(); len(args) > 0 {
		filename = args[0]
	}

	tune := config.Default()
	if *configFile != "" {
		var err error
		tune, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	measure := scene.NewRuneMeasurer()

	if *interactive || filename == "" {
		if err := runInteractiveMode(filename, measure, tune, *logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	s, err := export.Load(filename, measure, tune)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	exportFormat, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Available formats: json, d2\n")
		os.Exit(1)
	}
	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating exporter: %v\n", err)
		os.Exit(1)
	}

	output, err := exporter.Export(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting scene: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully exported to %s\n", *outputFile)
	} else {
		fmt.Println(output)
	}
}

// runInteractiveMode launches the TUI editor.
func runInteractiveMode(filename string, measure scene.TextMeasurer, tune config.Tuning, logFile string) error {
	logger, closeLog, err := newLogger(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	var s *scene.Scene
	if filename != "" {
		s, err = export.Load(filename, measure, tune)
		if err != nil {
			return fmt.Errorf("loading scene: %w", err)
		}
	} else {
		s = scene.New(measure, tune)
		filename = "scene.json"
	}

	ed := editor.New(s, filename, logger)
	ed.SetSave(func() error {
		return export.Save(s, filename)
	})
	return ed.Run()
}

// newLogger builds the TUI logger. The TUI owns the terminal, so without a
// log file the output is discarded.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.NewWithOptions(io.Discard, log.Options{}), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
