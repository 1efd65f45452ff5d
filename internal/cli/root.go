// Package cli implements the mws command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vitalvas/mws"
	"github.com/vitalvas/mws/config"
)

// settings carries what persistent flags resolved to for subcommands.
type settings struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg        *config.Config
	clientOpts []mws.Option
}

// NewRootCmd builds the command tree. clientOpts are appended to the
// options derived from configuration for every client the tool creates.
func NewRootCmd(clientOpts ...mws.Option) *cobra.Command {
	s := &settings{clientOpts: clientOpts}

	root := &cobra.Command{
		Use:     "mws",
		Short:   "Signed requests against Amazon Marketplace Web Service",
		Version: mws.Version,
		Long: `mws signs requests with Signature Version 2, sends them to the
Marketplace Web Service endpoint, and prints XML and tab-separated
responses as YAML or JSON.

Credentials come from a YAML config file (--config) and MWS_* environment
variables such as MWS_ACCESS_KEY_ID and MWS_SECRET_ACCESS_KEY.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newRequestCmd(s))
	root.AddCommand(newSignCmd(s))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the tool and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (s *settings) load(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg

	if s.noColor {
		color.NoColor = true
	}

	level := cfg.LogLevel
	if s.logLevel != "" {
		level = s.logLevel
	}

	config.InitLogger(cmd.ErrOrStderr(), color.NoColor)
	config.SetLogLevel(config.ParseLogLevel(level))

	return nil
}

func (s *settings) newClient() (*mws.Client, error) {
	return s.cfg.NewClient(s.clientOpts...)
}
