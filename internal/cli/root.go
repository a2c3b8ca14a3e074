package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"game-manager/pkg/gmclient"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

const (
	defaultBaseURL = "http://localhost:3000"
	envPrefix      = "GMCTL"
)

// NewRootCmd builds the gmctl command tree. Settings resolve flag first,
// then GMCTL_* environment variables, then defaults.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "gmctl",
		Short: "Send tasks to the game manager service",
		Long: `gmctl submits VoIP, VR, IoT and geospatial tasks to a running game
manager service and shows what each manager executed recently.

Every submit command defaults to the sample fixture for its manager, so
"gmctl voip" alone sends the sample VoIP task.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("base-url", defaultBaseURL, "game manager base URL (env GMCTL_BASE_URL)")
	flags.Duration("timeout", 10*time.Second, "per-request timeout (env GMCTL_TIMEOUT)")
	_ = v.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))

	newClient := func() *gmclient.Client {
		return gmclient.NewClient(v.GetString("base_url"), gmclient.WithTimeout(v.GetDuration("timeout")))
	}

	rootCmd.AddCommand(
		newVoIPCmd(newClient),
		newVRCmd(newClient),
		newIoTCmd(newClient),
		newGeoCmd(newClient),
		newApplyCmd(newClient),
		newHistoryCmd(newClient),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gmctl %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
