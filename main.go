package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/lcdmenu/internal/app"
	"github.com/atomicstack/lcdmenu/internal/config"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"terminal": inspectTerminal(cfg.App.Cols, cfg.App.Rows),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalReport struct {
	Probes   []descriptorProbe `json:"probes"`
	FitsGrid *bool             `json:"fits_grid,omitempty"`
}

type descriptorProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// inspectTerminal records which standard descriptors are terminals and
// whether the first one with a known size can hold the configured grid plus
// its frame. FitsGrid stays unset when no size could be read.
func inspectTerminal(cols, rows int) terminalReport {
	descriptors := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	report := terminalReport{Probes: make([]descriptorProbe, 0, len(descriptors))}
	for _, d := range descriptors {
		entry := descriptorProbe{Name: d.name}
		fd := int(d.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if report.FitsGrid == nil {
					fits := width >= cols+2 && height >= rows+2
					report.FitsGrid = &fits
				}
			} else {
				entry.Error = err.Error()
			}
		}
		report.Probes = append(report.Probes, entry)
	}
	return report
}
