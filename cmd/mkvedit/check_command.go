package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mkvedit/internal/config"
	"mkvedit/internal/deps"
	"mkvedit/internal/i18n"
	"mkvedit/internal/preflight"
)

const versionTimeout = 5 * time.Second

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [output-dir]",
		Short: "Report mkvmerge availability, configuration and output directory health",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := ctx.colorize(out)

			var lines []string
			statuses := preflight.CheckSystemDeps(cfg)
			lines = append(lines, renderSectionHeader("Dependencies", colorize)...)
			lines = append(lines, dependencyLines(statuses, colorize)...)
			for _, status := range statuses {
				if !status.Available {
					continue
				}
				versionCtx, cancel := context.WithTimeout(cmd.Context(), versionTimeout)
				version, verr := deps.Version(versionCtx, status.Path)
				cancel()
				if verr != nil {
					lines = append(lines, renderStatusLine("Version", statusWarn, verr.Error(), colorize))
				} else {
					lines = append(lines, renderStatusLine("Version", statusInfo, version, colorize))
				}
			}

			lines = append(lines, "")
			lines = append(lines, renderSectionHeader("Configuration", colorize)...)
			lines = append(lines, configLines(ctx, cfg, colorize)...)

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if expanded, err := config.ExpandPath(dir); err == nil {
				dir = expanded
			}
			results := []preflight.Result{preflight.CheckDirectoryAccess("Output directory", dir)}
			if results[0].Passed {
				results = append(results, preflight.CheckFreeSpace("Free space", dir, 0))
			}
			lines = append(lines, "")
			lines = append(lines, renderSectionHeader("Output directory", colorize)...)
			lines = append(lines, preflightLines(results, colorize)...)

			fmt.Fprintln(out, strings.Join(lines, "\n"))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderSettings(cfg))

			return requireMkvmerge(statuses)
		},
	}
}

func configLines(ctx *commandContext, cfg *config.Config, colorize bool) []string {
	var lines []string
	path := ctx.configPath
	if _, err := os.Stat(path); err == nil {
		lines = append(lines, renderStatusLine("Config file", statusOK, path, colorize))
	} else {
		lines = append(lines, renderStatusLine("Config file", statusInfo, fmt.Sprintf("%s (not found, defaults in use)", path), colorize))
	}
	if i18n.Supported(cfg.UI.Language) {
		lines = append(lines, renderStatusLine("Language", statusOK, i18n.New(cfg.UI.Language).Tag().String(), colorize))
	} else {
		lines = append(lines, renderStatusLine("Language", statusWarn, fmt.Sprintf("%q is not translated; using English", cfg.UI.Language), colorize))
	}
	return lines
}

// renderSettings lists the effective configuration keys as they appear in
// the TOML file.
func renderSettings(cfg *config.Config) string {
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "(stderr)"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Effective settings")
	tw.AppendHeader(table.Row{"Setting", "Value"})
	tw.AppendRows([]table.Row{
		{"mkvmerge.binary", cfg.MkvmergeBinary()},
		{"output.suffix", cfg.Output.Suffix},
		{"output.preflight", cfg.Output.Preflight},
		{"ui.language", cfg.UI.Language},
		{"ui.color", cfg.UI.Color},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.file", logFile},
	})
	return tw.Render()
}
