// cmd/sshpick/main.go

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"sshpick/internal/config"
	"sshpick/internal/logging"
	"sshpick/internal/ssh"
	"sshpick/internal/sshconf"
	"sshpick/internal/ui"
)

var version = "dev"

var (
	flagConfigPath string
	flagSettings   string
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "sshpick",
		Short:   "Pick a host from your ssh config and connect to it",
		Long:    "sshpick reads the Host blocks of an ssh client configuration file,\nlets you pick one in a terminal list and hands the session over to ssh.",
		Version: version,
		// Errors are reported once, in main, with the terminal restored.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker()
		},
	}

	root.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "ssh config file to read (default ~/.ssh/config)")
	root.PersistentFlags().StringVar(&flagSettings, "settings", "", "sshpick settings file (default ~/.config/sshpick/config.yaml)")
	root.Flags().BoolVar(&flagDebug, "debug", false, "write a debug log file")
	root.Flags().StringVar(&flagLogFile, "log-file", "", "debug log destination")

	root.AddCommand(newDumpCommand())
	return root
}

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every parsed host block as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, hosts, err := loadHosts()
			if err != nil {
				return err
			}
			for _, h := range hosts {
				if err := h.WriteDump(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// loadHosts resolves the ssh config location, reads it once and parses it.
// Both parse and read failures abort here, before any terminal state is
// touched.
func loadHosts() (config.Settings, string, []sshconf.Host, error) {
	settingsPath := flagSettings
	if settingsPath == "" {
		if p, err := config.DefaultSettingsPath(); err == nil {
			settingsPath = p
		}
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return settings, "", nil, err
	}

	path, err := config.ResolveSSHConfigPath(flagConfigPath, settings)
	if err != nil {
		return settings, "", nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, path, nil, fmt.Errorf("failed to read ssh config %s: %w", path, err)
	}

	hosts, err := sshconf.Parse(string(data))
	if err != nil {
		return settings, path, nil, fmt.Errorf("%s: %w", path, err)
	}
	return settings, path, hosts, nil
}

func runPicker() error {
	settings, path, hosts, err := loadHosts()
	if err != nil {
		return err
	}

	log, err := logging.New(pickString(flagLogFile, settings.LogFile), flagDebug || settings.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting picker", zap.String("config", path), zap.Int("hosts", len(hosts)))

	m := ui.NewModel(sshconf.NewCollection(hosts), log)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.SetSize(w, h)
	}

	// Bubble Tea enters raw mode and the alternate screen here and
	// restores both on every way out of Run, errors included.
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}

	picker, ok := final.(*ui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}

	hostID, confirmed := picker.Outcome()
	if !confirmed {
		return nil
	}
	if hostID == "" {
		return sshconf.ErrNoSelection
	}

	log.Info("handing session to ssh", zap.String("host", hostID))
	_ = log.Sync()
	return ssh.Launch(hostID)
}

func pickString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
