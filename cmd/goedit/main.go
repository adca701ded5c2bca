// Command goedit is the argv-driven startup shell spec.md §6 treats as an
// external collaborator: it owns flag parsing and wires the config loader,
// the structured logger, and the editor core together before handing off
// to the main loop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hnnsb/goedit/internal/config"
	"github.com/hnnsb/goedit/internal/editor"
	"github.com/hnnsb/goedit/internal/obslog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logPath    string
		showVer    bool
	)

	cmd := &cobra.Command{
		Use:           "goedit [filename]",
		Short:         "A minimalist full-screen terminal text editor",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVer {
				fmt.Println("goedit " + editor.Version)
				return nil
			}
			var filename string
			if len(args) == 1 {
				filename = args[0]
			}
			return run(configPath, logPath, filename)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to config.yaml")
	cmd.Flags().StringVar(&logPath, "log", "", "path to a structured log file (empty disables logging)")
	cmd.Flags().BoolVar(&showVer, "version", false, "print the version and exit")

	return cmd
}

func run(configPath, logPath, filename string) error {
	tun, err := config.Load(configPath)
	if err != nil {
		return err
	}

	zlog, closeLog, err := obslog.New(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	rows, cols, err := editor.WindowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}

	ed := editor.New(editorTunables(tun), zlog, os.Stdout, os.Stdin)
	ed.Resize(rows, cols)

	if err := ed.EnableRawMode(); err != nil {
		return err
	}
	defer ed.RestoreTerminal()

	if filename != "" {
		if err := ed.Open(filename); err != nil {
			ed.Die("opening file", err)
		}
	}

	ed.Run()
	return nil
}

// editorTunables adapts config.Tunables to editor.Tunables; kept separate
// so internal/editor never needs to import internal/config directly.
func editorTunables(t config.Tunables) editor.Tunables {
	return editor.Tunables{
		TabStop:       t.TabStop,
		QuitTimes:     t.QuitTimes,
		MessageTTL:    t.MessageTTL,
		ExtraKeywords: t.ExtraKeywords,
	}
}
