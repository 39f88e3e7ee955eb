// Package cli implements hwpinspect's command tree: "inspect" (spec.md
// §6.4) and "config" (§2.3), following the teacher's per-subcommand file
// layout and cobra conventions (internal/cli/{convert,config,providers}.go).
package cli

import (
	"github.com/hwp5go/hwp5/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion overrides the build-time version string (set by main via
// ldflags, mirroring the teacher's SetVersion).
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "hwpinspect [command]",
	Short: "HWP 5.0 binary document inspector",
	Long: `hwpinspect reads and writes HWP 5.0 binary documents directly at the
CFB/record level, without going through the target application.

하위 명령:
  inspect    문서의 CFB/DocInfo/Section 구조 출력
  config     설정 관리`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 출력",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command, returning any error cobra surfaced.
func Execute() error {
	applyDisplayConfig()
	return rootCmd.Execute()
}

// applyDisplayConfig loads the persisted config (falling back to
// defaults on any error) and toggles pterm's global color setting
// accordingly, honoring EnvNoColor over Display.Color.
func applyDisplayConfig() {
	cfg := config.DefaultConfig()
	if loader, err := config.NewLoader(); err == nil {
		if loaded, err := loader.Load(); err == nil {
			cfg = loaded
		}
	}
	if cfg.ColorEnabled() {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}
