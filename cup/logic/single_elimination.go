/* single_elimination.go
 * Contains the single elimination cup. A power-of-two field is the plain case; empty seeds turn first
 * round matches into walkovers whose winners are written straight into the second round
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

// SingleElimination is a binary knockout tree of 2^Rounds seeds
type SingleElimination struct {
	*bracket.Bracket
	teams []shared.Team
}

// NewSingleElimination builds a single elimination cup. Empty seeds are allowed as byes, but a first
// round match with two empty seeds is rejected
func NewSingleElimination(opts Options) (*SingleElimination, error) {
	return newSingleElimination("single elimination", opts, opts.logger())
}

// NewPowerOfTwoSingleElimination builds a single elimination cup that requires every seed to be present
func NewPowerOfTwoSingleElimination(opts Options) (*SingleElimination, error) {
	if err := rejectByes(opts.Teams); err != nil {
		return nil, err
	}
	return NewSingleElimination(opts)
}

func newSingleElimination(name string, opts Options, logger *slog.Logger) (*SingleElimination, error) {
	if opts.Rounds < 1 {
		return nil, fmt.Errorf("%w: single elimination needs at least 1 round, got %d", ErrNotEnoughRounds, opts.Rounds)
	}
	teams, err := shared.ResolveTeams(1<<opts.Rounds, opts.Teams)
	if err != nil {
		return nil, err
	}
	rounds, err := buildSingleElimination(opts.Rounds, teams)
	if err != nil {
		return nil, err
	}

	return &SingleElimination{
		Bracket: bracket.New(name, rounds, bracket.Binary, opts.simulator(), logger),
		teams:   teams,
	}, nil
}

func buildSingleElimination(roundCount int, teams []shared.Team) (bracket.Rounds, error) {
	first, err := firstRound(teams)
	if err != nil {
		return nil, err
	}
	rounds := bracket.Rounds{first}

	matchCount := len(first)
	matchNum := 1
	for r := 1; r < roundCount; r++ {
		matchCount /= 2
		round := make([]*match.Match, matchCount)
		for i := range round {
			round[i] = match.New(feeder(rounds[r-1], r, matchNum), feeder(rounds[r-1], r, matchNum+1))
			matchNum += 2
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

func firstRound(teams []shared.Team) ([]*match.Match, error) {
	round := make([]*match.Match, len(teams)/2)
	for i := range round {
		m := match.New(teams[2*i], teams[2*i+1])
		if m.IsEmpty() {
			return nil, fmt.Errorf("%w: match %d", ErrEmptyMatch, i+1)
		}
		round[i] = m
	}
	return round, nil
}

// feeder returns what goes into a slot fed by the match numbered `number`. Second round slots fed by a
// walkover get the walking team directly, everything else gets a placeholder label
func feeder(previous []*match.Match, round, number int) shared.Team {
	if round == 1 {
		m := previous[number-1]
		if m.IsWalkover() {
			if m.Team1.IsAbsent() {
				return m.Team2
			}
			return m.Team1
		}
	}
	return match.WinnerLabel(number)
}

// PlayMatch plays the next non-walkover match
func (s *SingleElimination) PlayMatch() (bracket.Outcome, error) {
	outcome, err := s.Bracket.PlayMatch()
	return outcome, wrapFinished(err)
}

// UpdateTeams reseeds the first round only. Later rounds keep their slots until play overwrites them;
// a walkover created here is placed when traversal reaches it
func (s *SingleElimination) UpdateTeams(teams []shared.Team) error {
	if err := checkUpdate(s.teams, teams); err != nil {
		return err
	}
	if _, err := firstRound(teams); err != nil {
		return err
	}

	s.teams = copyTeams(teams)
	for i, m := range s.Rounds[0] {
		m.Team1, m.Team2 = teams[2*i], teams[2*i+1]
	}
	return nil
}

func (s *SingleElimination) Teams() []shared.Team {
	return copyTeams(s.teams)
}

func (s *SingleElimination) Print() string {
	return layout.Render(layout.SingleElimination(s.Rounds))
}
