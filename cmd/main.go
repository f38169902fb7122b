package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Akashdeep-Patra/gridview/internal/app"
	"github.com/Akashdeep-Patra/gridview/internal/common"
	"github.com/Akashdeep-Patra/gridview/internal/config"
	"github.com/Akashdeep-Patra/gridview/internal/data"
	"github.com/Akashdeep-Patra/gridview/internal/grid"
	"github.com/Akashdeep-Patra/gridview/internal/logger"
	"github.com/Akashdeep-Patra/gridview/internal/watcher"
)

// Build-time variables injected via ldflags by GoReleaser / Taskfile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI viewer spends most of its time waiting for input and frame
	// ticks; two OS threads cover the actual Go work. If the user
	// explicitly sets GOMAXPROCS, we respect that.
	if os.Getenv("GOMAXPROCS") == "" {
		maxProcs := 2
		if n := runtime.NumCPU(); n < maxProcs {
			maxProcs = n
		}
		runtime.GOMAXPROCS(maxProcs)
	}

	// The whole point of row recycling is a small resident set no matter
	// how deep the user scrolls; a tight GC target keeps the runtime
	// honest about it.
	debug.SetMemoryLimit(64 * 1024 * 1024) // 64 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridview [file.csv]",
		Short: "A TUI viewer for very large tabular datasets",
		Long: `gridview renders huge (or endless) tables inside a terminal viewport by
materializing only the rows near the visible area and recycling row
containers as you scroll, so memory and per-frame cost stay proportional
to the viewport — never to how far you've scrolled.

With a CSV file argument it serves the file and reloads it on change.
Without one it serves an unbounded synthetic dataset, useful for demos
and for poking at the recycling behavior in the status bar.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"gridview %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	rootCmd.Flags().Int("columns", 0, "Column count for the synthetic dataset (overrides config)")
	rootCmd.Flags().Bool("no-header", false, "Treat the CSV's first row as data, not column titles")
	rootCmd.Flags().Int("fps", 0, "Frame rate of the render loop (overrides config)")
	rootCmd.Flags().String("theme", "", "Theme: dark or light (overrides config)")
	rootCmd.Flags().String("log-file", "", "Write diagnostics to this file")

	return rootCmd
}

// buildVersionCmd creates the `gridview version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("gridview %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `gridview completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gridview.

Examples:
  # Bash (add to ~/.bashrc)
  gridview completion bash > /etc/bash_completion.d/gridview

  # Zsh (add to ~/.zshrc before compinit)
  gridview completion zsh > "${fpath[1]}/_gridview"

  # Fish
  gridview completion fish > ~/.config/fish/completions/gridview.fish

  # PowerShell
  gridview completion powershell > gridview.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if v, _ := cmd.Flags().GetInt("columns"); v > 0 {
		cfg.Columns = v
	}
	if v, _ := cmd.Flags().GetInt("fps"); v > 0 {
		cfg.FPS = v
	}
	if v, _ := cmd.Flags().GetString("theme"); v != "" {
		cfg.Theme = v
	}

	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		closer, err := logger.SetupFile(path)
		if err != nil {
			return err
		}
		defer closer.Close()
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	var source grid.Source
	var csvPath string
	if len(args) == 1 {
		csvPath = args[0]
		noHeader, _ := cmd.Flags().GetBool("no-header")
		csvSrc, err := data.LoadCSV(csvPath, !noHeader)
		if err != nil {
			return fmt.Errorf("loading %s: %w", csvPath, err)
		}
		source = csvSrc
	} else {
		source = data.NewSyntheticSource(cfg.Columns)
	}

	model := app.New(cfg, source)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Reload-on-change for file-backed sources. The watcher goroutine only
	// ever sends a message; the actual re-read happens in the update loop
	// where it cannot race a render.
	if csvPath != "" {
		if watchCh, stop, watchErr := watcher.Watch(csvPath, 500*time.Millisecond); watchErr == nil {
			defer stop()
			go func() {
				for range watchCh {
					p.Send(common.RefreshMsg{})
				}
			}()
		} else {
			logger.Named("watcher").WithField("err", watchErr).Warn("file watching disabled")
		}
	}

	_, err = p.Run()
	return err
}
