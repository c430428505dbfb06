// Package cli implements kanbanctl, a terminal client for the kanban API.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyServer = "server"
	keyState  = "state"
	keyConfig = "config"
)

// NewRootCmd builds the kanbanctl command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{v: viper.New()})
}

func newRootCmd(a *app) *cobra.Command {
	v := a.v

	root := &cobra.Command{
		Use:   "kanbanctl",
		Short: "Terminal client for the kanban board API",
		Long: `kanbanctl drives a kanban server from the terminal. It remembers the
selected board, unlocked boards and admin status in a local state file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(v)
			return nil
		},
	}

	root.PersistentFlags().StringP(keyConfig, "c", "", "config file (default is $HOME/.config/kanbanctl/config.yaml)")
	root.PersistentFlags().String(keyServer, "http://localhost:8080", "kanban server base URL")
	root.PersistentFlags().String(keyState, defaultStatePath(), `local state file, or ":memory:"`)
	_ = v.BindPFlag(keyConfig, root.PersistentFlags().Lookup(keyConfig))
	_ = v.BindPFlag(keyServer, root.PersistentFlags().Lookup(keyServer))
	_ = v.BindPFlag(keyState, root.PersistentFlags().Lookup(keyState))

	root.AddCommand(
		newBoardsCmd(a),
		newListsCmd(a),
		newCardsCmd(a),
		newMembersCmd(a),
		newLabelsCmd(a),
		newChecklistCmd(a),
		newCalendarCmd(a),
		newUnlockCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWatchCmd(a),
		newDBCmd(),
		newAdminCmd(),
	)
	closeAfterRun(root, a)
	return root
}

// closeAfterRun releases the state file when a command returns, whether or
// not it failed.
func closeAfterRun(cmd *cobra.Command, a *app) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if cerr := a.close(); err == nil {
					err = cerr
				}
			}()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(sub, a)
	}
}

// Execute runs kanbanctl with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

func initConfig(v *viper.Viper) {
	if cfgFile := v.GetString(keyConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("KANBANCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read config file if it exists (ignore error if not found)
	_ = v.ReadInConfig()
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "kanbanctl")
}

func defaultStatePath() string {
	return filepath.Join(configDir(), "state.db")
}
