package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xtding233/ticket-odds/internal/economy"
	"github.com/xtding233/ticket-odds/internal/game"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configDir string
	profile   string
	failProb  float64
	maxLevel  int
	schedule  []int
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:           "odds",
		Short:         "Offline ticket economy calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&rf.configDir, "config-dir", "configs", "directory holding games/<profile>.yaml")
	pf.StringVar(&rf.profile, "profile", game.DefaultProfile, "game profile")
	pf.Float64Var(&rf.failProb, "failure-probability", 0, "override the per-level failure probability")
	pf.IntVar(&rf.maxLevel, "max-level", 0, "override the final level")
	pf.IntSliceVar(&rf.schedule, "cost-schedule", nil, "override the failure cost schedule, e.g. 0,1,2,4")

	engine := func(cmd *cobra.Command) (*economy.Engine, error) {
		var o game.Overrides
		if cmd.Flags().Changed("failure-probability") {
			o.FailureProbability = &rf.failProb
		}
		if cmd.Flags().Changed("max-level") {
			o.MaxLevel = &rf.maxLevel
		}
		o.CostSchedule = rf.schedule
		_, cfg, err := game.NewLoader(rf.configDir).Resolve(rf.profile, o)
		if err != nil {
			return nil, err
		}
		return economy.NewEngine(cfg), nil
	}

	root.AddCommand(newCalcCmd(engine), newMaxFailuresCmd(engine), newPlanCmd(engine))
	return root
}

type engineFunc func(*cobra.Command) (*economy.Engine, error)

func newCalcCmd(engine engineFunc) *cobra.Command {
	var st economy.PlayerState
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Odds of finishing the current run and of a restart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := engine(cmd)
			if err != nil {
				return err
			}
			res := e.Calculate(st)
			sum := e.Summary(st)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "current probability:   %s\n", economy.FormatProbability(res.CurrentProbability))
			fmt.Fprintf(out, "restart probability:   %s\n", economy.FormatProbability(res.RestartProbability))
			fmt.Fprintf(out, "safe level:            %t\n", res.IsSafeLevel)
			fmt.Fprintf(out, "next failure cost:     %d\n", res.NextFailureCost)
			fmt.Fprintf(out, "expected extra cost:   %.2f (sd %.2f, p90 %.0f, p99 %.0f)\n",
				res.ExpectedAdditionalCost, sum.StdDev, sum.P90, sum.P99)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&st.CurrentLevel, "level", 1, "current level")
	f.IntVar(&st.RemainingTickets, "tickets", 0, "remaining regular tickets")
	f.IntVar(&st.TotalFailures, "failures", 0, "failures so far")
	f.BoolVar(&st.IsExpressStart, "express", false, "run was an express start")
	return cmd
}

func newMaxFailuresCmd(engine engineFunc) *cobra.Command {
	var (
		tickets int
		express bool
	)
	cmd := &cobra.Command{
		Use:   "max-failures",
		Short: "Failures a fresh run can pay for",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := engine(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "max failures covered: %d\n", e.MaxFailuresCovered(tickets, express))
			return nil
		},
	}
	cmd.Flags().IntVar(&tickets, "tickets", 0, "regular tickets")
	cmd.Flags().BoolVar(&express, "express", false, "express start")
	return cmd
}

func newPlanCmd(engine engineFunc) *cobra.Command {
	var (
		target  float64
		express bool
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Tickets needed to reach a target success probability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := engine(cmd)
			if err != nil {
				return err
			}
			p := e.TicketsForTarget(target, express)
			fmt.Fprintf(cmd.OutOrStdout(), "tickets required: %d (covers %d of %d risky levels, %s)\n",
				p.TicketsRequired, p.FailuresCovered, p.RiskyTrials, economy.FormatProbability(p.Probability))
			return nil
		},
	}
	cmd.Flags().Float64Var(&target, "target", 1, "target success probability in [0,1]")
	cmd.Flags().BoolVar(&express, "express", false, "express start")
	return cmd
}
