/* stepladder.go
 * Contains the stepladder cup: the two lowest seeds meet first and every later seed plays the previous
 * winner, so the top seed only plays the final
 */

package logic

import (
	"fmt"

	"knockout-cups/cup/bracket"
	"knockout-cups/cup/layout"
	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"
)

// Stepladder has one match per round
type Stepladder struct {
	*bracket.Bracket
	teams []shared.Team
}

// NewStepladder builds a stepladder of TeamCount teams, or of len(Teams) when no count is given
func NewStepladder(opts Options) (*Stepladder, error) {
	count := opts.TeamCount
	if count == 0 {
		count = len(opts.Teams)
	}
	if count < 2 {
		return nil, fmt.Errorf("%w: stepladder needs at least 2 teams, got %d", ErrNotEnoughTeams, count)
	}
	teams, err := shared.ResolveTeams(count, opts.Teams)
	if err != nil {
		return nil, err
	}
	if err := rejectByes(teams); err != nil {
		return nil, err
	}

	rounds := bracket.Rounds{{match.New(teams[0], teams[1])}}
	for x := 2; x < count; x++ {
		rounds = append(rounds, []*match.Match{match.New(teams[x], match.WinnerLabel(x-1))})
	}

	return &Stepladder{
		Bracket: bracket.New("stepladder", rounds, bracket.Ladder, opts.simulator(), opts.logger()),
		teams:   teams,
	}, nil
}

// PlayMatch plays the next rung
func (s *Stepladder) PlayMatch() (bracket.Outcome, error) {
	outcome, err := s.Bracket.PlayMatch()
	return outcome, wrapFinished(err)
}

// UpdateTeams reseeds the opening match and the entering team of every later match
func (s *Stepladder) UpdateTeams(teams []shared.Team) error {
	if err := checkUpdate(s.teams, teams); err != nil {
		return err
	}
	if err := rejectByes(teams); err != nil {
		return err
	}

	s.teams = copyTeams(teams)
	s.Rounds[0][0].Team1, s.Rounds[0][0].Team2 = teams[0], teams[1]
	for x := 2; x < len(teams); x++ {
		s.Rounds[x-1][0].Team1 = teams[x]
	}
	return nil
}

func (s *Stepladder) Teams() []shared.Team {
	return copyTeams(s.teams)
}

func (s *Stepladder) Print() string {
	return layout.Render(layout.Stepladder(s.Rounds))
}
