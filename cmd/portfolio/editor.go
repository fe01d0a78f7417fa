package main

import (
	"portfolio3d/internal/app"

	"github.com/spf13/cobra"
)

var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Open the 3D scene editor",
	Long: `Opens the scene editor window. Add primitives with 1-5, move, rotate
and scale them with the gizmo (W/E/R), undo with Ctrl+Z and export a
PNG with Ctrl+E.`,
	PreRun: enterBinaryDir,
	RunE:   func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetInt("history"); v > 0 {
			cfg.Editor.MaxHistory = v
		}
		return app.RunEditor(cfg, log)
	},
}

var showcaseCmd = &cobra.Command{
	Use:    "showcase",
	Short:  "Open the animated showcase backgrounds",
	PreRun: enterBinaryDir,
	RunE:   func(cmd *cobra.Command, args []string) error {
		return app.RunShowcase(cfg.Editor.WindowWidth, cfg.Editor.WindowHeight, cfg.Editor.TargetFPS, log)
	},
}

// enterBinaryDir lets the desktop commands find fonts next to the binary.
// It runs after --config has been resolved against the caller's directory.
func enterBinaryDir(cmd *cobra.Command, args []string) {
	app.ChdirToExecutable(log)
}

func init() {
	rootCmd.AddCommand(editorCmd)
	rootCmd.AddCommand(showcaseCmd)
	editorCmd.Flags().Int("history", 0, "Override the undo history size")
}
