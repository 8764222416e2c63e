package cmd

import (
	"os"

	"httplite/internal/bootstrap"
	"httplite/internal/config"
	"httplite/internal/log"
	"httplite/internal/version"

	"github.com/spf13/cobra"
)

var directory string

// rootCmd starts the server.
var rootCmd = &cobra.Command{
	Use:           "httplite",
	Short:         "A minimal HTTP/1.1 server over raw TCP.",
	Long:          "httplite answers one request per connection: echo, user agent and file routes.",
	Version:       version.GetShortVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.MustLoad()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("directory") {
			conf.SetDirectory(directory)
		}

		level, err := log.ParseLevel(conf.LogLevel())
		if err != nil {
			return err
		}
		log.Init(log.WithLevel(level), log.WithJSON(conf.LogJSON()))
		log.Infof("Starting %s", version.GetVersion())

		app, err := bootstrap.New(conf)
		if err != nil {
			return err
		}
		return app.Run()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&directory, "directory", "", "base directory served under /files/ (overrides DIRECTORY)")
	rootCmd.AddCommand(versionCmd)
}
