// Command satcore reads a DIMACS CNF file and decides its satisfiability
// with one of the six decision procedures in this module.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/dimacs"
	"github.com/cnflab/satcore/dpll"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/resolution"
	"github.com/cnflab/satcore/trace"
	"github.com/cnflab/satcore/truthtable"
)

var log = logrus.New()

// solver is the contract every decision procedure in this module
// implements; main dispatches to one of its six concrete types by name.
type solver interface {
	Solve(problem clause.Set, sink *trace.Recorder) engine.Output
}

type truthtableAdapter struct{ e truthtable.Engine }

func (a truthtableAdapter) Solve(problem clause.Set, sink *trace.Recorder) engine.Output {
	return a.e.Solve(problem, problem.ComputeMaxVar(), sink)
}

func byEngineName(name string, leavesOnly bool) (solver, error) {
	switch name {
	case "truthtable":
		return truthtableAdapter{e: truthtable.Engine{LeavesOnly: leavesOnly}}, nil
	case "resolution-naive":
		return resolution.Naive{}, nil
	case "resolution-optimized":
		return resolution.Optimized{}, nil
	case "dpll-naive":
		return dpll.Naive{}, nil
	case "dpll-classical":
		return dpll.Classical{}, nil
	case "dpll-watched":
		return dpll.Watched{}, nil
	default:
		return nil, errors.Errorf("unknown engine %q", name)
	}
}

func traceModeByName(name string) (trace.Mode, error) {
	switch name {
	case "plain":
		return trace.Plain, nil
	case "html":
		return trace.HTML, nil
	case "console":
		return trace.Console, nil
	default:
		return trace.Plain, errors.Errorf("unknown trace mode %q", name)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "satcore [flags] file.cnf",
		Short: "decide the satisfiability of a DIMACS CNF formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().String("engine", "dpll-watched",
		"decision procedure: truthtable, resolution-naive, resolution-optimized, dpll-naive, dpll-classical, dpll-watched")
	cmd.Flags().String("trace", "plain", "trace rendering: plain, html, console")
	cmd.Flags().Bool("trace-output", false, "print the rendered trace after the verdict")
	cmd.Flags().Bool("leaves-only", false, "truthtable engine only: evaluate only at leaves")
	cmd.Flags().String("config", "", "optional config file (engine/trace defaults)")
	viper.BindPFlag("engine", cmd.Flags().Lookup("engine"))
	viper.BindPFlag("trace", cmd.Flags().Lookup("trace"))
	viper.BindPFlag("trace-output", cmd.Flags().Lookup("trace-output"))
	viper.BindPFlag("leaves-only", cmd.Flags().Lookup("leaves-only"))
	viper.BindPFlag("config", cmd.Flags().Lookup("config"))
	return cmd
}

func loadConfig() error {
	viper.SetEnvPrefix("satcore")
	viper.AutomaticEnv()
	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "cannot read config file %q", path)
		}
	}
	return nil
}

func run(path string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "cannot open %q", path)
	}
	defer f.Close()

	problem, _, err := dimacs.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "cannot parse %q", path)
	}
	log.WithFields(logrus.Fields{
		"clauses": len(problem.Clauses),
		"vars":    problem.ComputeMaxVar(),
	}).Info("parsed formula")

	mode, err := traceModeByName(viper.GetString("trace"))
	if err != nil {
		return err
	}
	s, err := byEngineName(viper.GetString("engine"), viper.GetBool("leaves-only"))
	if err != nil {
		return err
	}

	sink := trace.NewRecorder(mode)
	out := s.Solve(problem, sink)

	switch v := out.Verdict.(type) {
	case engine.Unsat:
		fmt.Println("UNSAT")
	case engine.Model:
		fmt.Println("SAT")
		fmt.Println(strings.Join(engine.ModelString(v, problem.Names), " "))
	case engine.Partial:
		fmt.Println("SAT (partial witness)")
		for _, l := range v.Units {
			fmt.Print(l.Int(), " ")
		}
		fmt.Println()
	case engine.True:
		fmt.Println("SAT (no witness reconstructed)")
	}
	if viper.GetBool("trace-output") {
		fmt.Println(out.Trace)
	}
	return nil
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{})
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("satcore failed")
		os.Exit(1)
	}
}
