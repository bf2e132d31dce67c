/* play.go
 * Contains the `play` command: build a cup from configuration and flags, play it and print the result
 */

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"knockout-cups/cup/api"
	"knockout-cups/cup/bracket"
	"knockout-cups/cup/match"
	"knockout-cups/cup/registry"
	"knockout-cups/cup/shared"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var championStyle = lipgloss.NewStyle().
	Bold(true).
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

type playFlags struct {
	teams       string
	randomNames bool
	follow      string
	watch       bool
}

func newPlayCmd(v *viper.Viper) *cobra.Command {
	var flags playFlags
	defaults := Default()

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a cup and print the bracket",
		Long: `Play a knockout cup to the end and print the final bracket.

Teams are given as a space separated list, with multi word names quoted:
  cups play --type competitions.standard_single --teams '"Faze Clan" NaVi BYE G2'
The BYE token leaves a seed empty; its opponent walks over.
Without --teams, "Team 1".."Team N" are used, or random names with --random-names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Load(v)
			if err != nil {
				return err
			}
			return runPlay(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringP("type", "t", defaults.Cup.Type, "cup type, run the types command for the list")
	cmd.Flags().IntP("rounds", "r", defaults.Cup.Rounds, "rounds of a bracket cup (2^rounds teams)")
	cmd.Flags().Int("team-count", defaults.Cup.TeamCount, "number of teams in a stepladder")
	cmd.Flags().Bool("require-double-win", defaults.Cup.RequireDoubleWin,
		"the losers bracket champion must win the double elimination final twice")
	cmd.Flags().String("simulator", defaults.Simulation.Simulator, "match simulator: random or fixed (team 1 always wins 5-0)")
	cmd.Flags().Uint64("seed", defaults.Simulation.Seed, "seed of the random simulator, 0 seeds from the clock")
	cmd.Flags().Float64("matches-per-second", defaults.Simulation.MatchesPerSecond, "pace play, 0 plays instantly")
	_ = v.BindPFlag("cup.type", cmd.Flags().Lookup("type"))
	_ = v.BindPFlag("cup.rounds", cmd.Flags().Lookup("rounds"))
	_ = v.BindPFlag("cup.team_count", cmd.Flags().Lookup("team-count"))
	_ = v.BindPFlag("cup.require_double_win", cmd.Flags().Lookup("require-double-win"))
	_ = v.BindPFlag("simulation.simulator", cmd.Flags().Lookup("simulator"))
	_ = v.BindPFlag("simulation.seed", cmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("simulation.matches_per_second", cmd.Flags().Lookup("matches-per-second"))

	cmd.Flags().StringVar(&flags.teams, "teams", "", "space separated team list, quote names with spaces, BYE for an empty seed")
	cmd.Flags().BoolVar(&flags.randomNames, "random-names", false, "generate random team names")
	cmd.Flags().StringVarP(&flags.follow, "follow", "f", "", "report how far a team got, matched loosely by name")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "print the bracket after every match")
	cmd.MarkFlagsMutuallyExclusive("teams", "random-names")

	return cmd
}

func runPlay(cmd *cobra.Command, cfg *Config, flags playFlags) error {
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), cfg.Logging)
	a := api.NewAPI(registry.Default(), logger)

	req := api.CupRequest{
		Type:             cfg.Cup.Type,
		Rounds:           cfg.Cup.Rounds,
		TeamCount:        cfg.Cup.TeamCount,
		RequireDoubleWin: cfg.Cup.RequireDoubleWin,
		Simulator:        newSimulator(cfg.Simulation),
	}

	switch {
	case flags.teams != "":
		teams, err := api.ParseTeams(flags.teams)
		if err != nil {
			return err
		}
		// The cup is sized by the list
		req.Teams, req.Rounds, req.TeamCount = teams, 0, 0
	case flags.randomNames:
		count := 1 << cfg.Cup.Rounds
		if cfg.Cup.Type == registry.Stepladder {
			count = cfg.Cup.TeamCount
		}
		teams, err := api.RandomTeams(count)
		if err != nil {
			return err
		}
		req.Teams = teams
	}

	cup, err := a.NewCup(req)
	if err != nil {
		return err
	}

	var followed shared.Team
	if flags.follow != "" {
		if followed, err = a.FindTeam(cup, flags.follow); err != nil {
			return err
		}
	}

	wins := 0
	champion, err := a.PlayCup(cmd.Context(), cup, cfg.Simulation.MatchesPerSecond, func(outcome bracket.Outcome) {
		if !followed.IsAbsent() && outcome.Winner == followed {
			wins++
		}
		if flags.watch {
			fmt.Fprint(out, cup.Print())
		}
	})
	if err != nil {
		return err
	}

	if !flags.watch {
		fmt.Fprint(out, cup.Print())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, championStyle.Render("Champion: "+champion.String()))
	if !followed.IsAbsent() {
		reportFollowed(out, followed, champion, wins)
	}
	return nil
}

func reportFollowed(out io.Writer, team, champion shared.Team, wins int) {
	verb := "was knocked out"
	if team == champion {
		verb = "won the cup"
	}
	fmt.Fprintf(out, "%s %s after winning %d %s\n", team, verb, wins, plural(wins, "match", "matches"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func newSimulator(cfg SimulationConfig) match.Simulator {
	if strings.EqualFold(cfg.Simulator, SimulatorFixed) {
		return match.FixedSimulator{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return match.NewRandomSimulator(seed)
}
