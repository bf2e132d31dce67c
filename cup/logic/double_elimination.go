/* double_elimination.go
 * Contains the power-of-two double elimination cup: a winners bracket and a losers bracket played in an
 * interleaved order, then a grand final between the two bracket champions
 */

package logic

import (
	"fmt"
	"log/slog"

	"knockout-cups/cup/bracket"
	"knockout-cups/cup/layout"
	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"
)

const (
	winnersChampionLabel shared.Team = "Winners Bracket Winner"
	losersChampionLabel  shared.Team = "Losers Bracket Winner"
)

// DoubleElimination eliminates a team after its second loss
type DoubleElimination struct {
	winners *SingleElimination
	losers  *LosersBracket

	// progression lists the brackets in the order their rounds are played: losers, winners, losers per phase
	progression []*bracket.Bracket
	step        int
	current     *bracket.Bracket

	final       *match.Match
	finalScores [2][2]match.Score

	requireDoubleWin bool
	sim              match.Simulator
	logger           *slog.Logger

	teams           []shared.Team
	winnersChampion shared.Team
	winner          shared.Team
	finished        bool
}

// NewDoubleElimination builds a double elimination cup of 2^Rounds teams
func NewDoubleElimination(opts Options) (*DoubleElimination, error) {
	if opts.Rounds < 2 {
		return nil, fmt.Errorf("%w: double elimination needs at least 2 rounds, got %d", ErrNotEnoughRounds, opts.Rounds)
	}
	if err := rejectByes(opts.Teams); err != nil {
		return nil, err
	}

	sim := opts.simulator()
	logger := opts.logger()
	opts.Simulator = sim
	winners, err := newSingleElimination("winners", opts, logger)
	if err != nil {
		return nil, err
	}
	losers, err := NewLosersBracket(opts.Rounds, sim, logger)
	if err != nil {
		return nil, err
	}

	progression := make([]*bracket.Bracket, 0, 3*(opts.Rounds-1))
	for range opts.Rounds - 1 {
		progression = append(progression, losers.Bracket, winners.Bracket, losers.Bracket)
	}

	return &DoubleElimination{
		winners:          winners,
		losers:           losers,
		progression:      progression,
		step:             -1,
		current:          winners.Bracket,
		final:            match.New(winnersChampionLabel, losersChampionLabel),
		requireDoubleWin: opts.RequireDoubleWin,
		sim:              sim,
		logger:           logger.With("cup", "double elimination"),
		teams:            winners.Teams(),
	}, nil
}

// PlayMatch plays the next match of the active bracket. When its round is over the next bracket in the
// progression takes over, and once the progression is exhausted the final is played.
// A bracket finishing is reported as Continuing; only the final finishes the cup
func (d *DoubleElimination) PlayMatch() (bracket.Outcome, error) {
	if d.finished {
		return bracket.Outcome{}, ErrCupFinished
	}

	if d.current.RoundOver() {
		d.step++
		if d.step >= len(d.progression) {
			return d.playFinal(), nil
		}
		d.current = d.progression[d.step]
	}

	outcome, err := d.current.PlayMatch()
	if err != nil {
		return bracket.Outcome{}, fmt.Errorf("playing %s bracket: %w", d.current.Name, err)
	}

	if d.current == d.winners.Bracket {
		if err := d.losers.AddTeam(d.current.CurrentMatch().Loser); err != nil {
			return bracket.Outcome{}, err
		}
	}

	if outcome.Finished {
		if d.current == d.winners.Bracket {
			d.winnersChampion = outcome.Winner
			d.final.Team1 = outcome.Winner
		} else {
			d.final.Team2 = outcome.Winner
		}
	}
	return bracket.Continuing(outcome.Winner), nil
}

// playFinal plays game one and, when the losers bracket champion wins it and a double win is required,
// the deciding rematch
func (d *DoubleElimination) playFinal() bracket.Outcome {
	winner := d.final.PlayUntilDecided(d.sim)
	d.finalScores[0] = [2]match.Score{d.final.Score1, d.final.Score2}
	d.logger.Debug("final played", "game", 1, "winner", winner, "score", d.final.ShortString())

	if d.requireDoubleWin && winner != d.winnersChampion {
		winner = d.final.PlayUntilDecided(d.sim)
		d.finalScores[1] = [2]match.Score{d.final.Score1, d.final.Score2}
		d.logger.Debug("final played", "game", 2, "winner", winner, "score", d.final.ShortString())
	}

	d.winner = winner
	d.finished = true
	d.logger.Info("cup finished", "winner", winner)
	return bracket.Finished(winner)
}

// UpdateTeams reseeds the winners bracket
func (d *DoubleElimination) UpdateTeams(teams []shared.Team) error {
	if err := rejectByes(teams); err != nil {
		return err
	}
	if err := d.winners.UpdateTeams(teams); err != nil {
		return err
	}
	d.teams = copyTeams(teams)
	return nil
}

func (d *DoubleElimination) Teams() []shared.Team {
	return copyTeams(d.teams)
}

func (d *DoubleElimination) Winner() (shared.Team, bool) {
	return d.winner, d.finished
}

// Final returns the grand final match
func (d *DoubleElimination) Final() *match.Match {
	return d.final
}

// FinalScores returns the scores of both final games, indexed [game][team]. An unplayed game is blank
func (d *DoubleElimination) FinalScores() [2][2]match.Score {
	return d.finalScores
}

func (d *DoubleElimination) Winners() *SingleElimination {
	return d.winners
}

func (d *DoubleElimination) Losers() *LosersBracket {
	return d.losers
}

// Print renders the winners bracket, the losers bracket and the final, in that order
func (d *DoubleElimination) Print() string {
	return layout.Render(layout.SingleElimination(d.winners.Rounds)) +
		layout.Render(layout.LosersBracket(d.losers.Rounds)) +
		"\n" + layout.RenderFinal(d.final, d.finalScores)
}
