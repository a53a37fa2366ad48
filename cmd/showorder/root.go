package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/showorder/config"
	"github.com/katalvlaran/showorder/logging"
	"github.com/katalvlaran/showorder/planner"
	"github.com/katalvlaran/showorder/roster"
)

var version = "dev"

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logging.Nop()}

	root := &cobra.Command{
		Use:   "showorder",
		Short: "Generate showcase setlists without back-to-back performers",
		Long: `showorder reads a roster (a CSV file with one column per team, listing its
performers) and generates every performance order in which no performer
appears in two consecutive acts, optionally pinning teams to slots.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: .showorder/config.yaml or ~/.config/showorder/config.yaml)")
	pf.StringP("roster", "r", "", "roster CSV file, one column per team")
	pf.StringP("format", "f", "", "output format: text, json or yaml")
	pf.Bool("debug", false, "enable debug logging")
	_ = a.v.BindPFlag("roster", pf.Lookup("roster"))
	_ = a.v.BindPFlag("format", pf.Lookup("format"))
	_ = a.v.BindPFlag("debug", pf.Lookup("debug"))

	root.AddCommand(
		newGenerateCmd(a),
		newExplainCmd(a),
		newConflictsCmd(a),
		newVerifyCmd(a),
		newTeamsCmd(a),
		newInitConfigCmd(a),
	)

	return root
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(logging.Options{Debug: cfg.Debug})
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.log = log.With(zap.String("command", cmd.Name()))
	a.log.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("roster", cfg.Roster),
		zap.String("format", cfg.Format))

	return nil
}

// planner reads the configured roster and builds a Planner over it.
func (a *app) planner() (*planner.Planner, error) {
	f, err := os.Open(a.cfg.Roster)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	reg, err := roster.LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("loading roster %s: %w", a.cfg.Roster, err)
	}
	a.log.Info("roster loaded", zap.String("path", a.cfg.Roster), zap.Int("teams", reg.Len()))

	return planner.New(reg, planner.WithLogger(a.log))
}
