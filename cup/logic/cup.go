/* cup.go
 * Contains the Cup contract shared by every format, the construction options and the errors returned while
 * building or playing a cup
 */

package logic

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"knockout-cups/cup/bracket"
	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"
)

var (
	ErrNotEnoughRounds   = errors.New("not enough rounds")
	ErrNotEnoughTeams    = errors.New("not enough teams")
	ErrEmptyMatch        = errors.New("first round match has no teams")
	ErrByeNotSupported   = errors.New("byes are not supported by this cup")
	ErrLosersBracketFull = errors.New("losers bracket has no free slots")
	ErrCupFinished       = errors.New("cup has already finished")
)

// Cup is a playable knockout competition
type Cup interface {
	// PlayMatch plays the next match. The returned Outcome is Finished once the cup has a champion
	PlayMatch() (bracket.Outcome, error)
	// UpdateTeams replaces the seeded teams. Only valid before the first match is played
	UpdateTeams(teams []shared.Team) error
	Teams() []shared.Team
	Winner() (shared.Team, bool)
	// Print renders the current state of the cup as fixed width text
	Print() string
}

// Options configures cup construction. Zero values fall back to defaults
type Options struct {
	// Rounds is the number of winners bracket rounds. Ignored by the stepladder
	Rounds int
	// TeamCount sizes a stepladder. When zero the length of Teams is used
	TeamCount int
	// Teams are the seeds in bracket order. When empty, "Team 1".."Team N" are generated
	Teams []shared.Team
	// RequireDoubleWin forces the winners bracket champion to be beaten twice in a double elimination final
	RequireDoubleWin bool
	Simulator        match.Simulator
	Logger           *slog.Logger
}

func (o Options) simulator() match.Simulator {
	if o.Simulator == nil {
		return match.NewRandomSimulator(uint64(time.Now().UnixNano()))
	}
	return o.Simulator
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// PlayCup plays every remaining match of a cup and returns its champion
func PlayCup(c Cup) (shared.Team, error) {
	for {
		outcome, err := c.PlayMatch()
		if err != nil {
			return shared.NoTeam, err
		}
		if outcome.Finished {
			return outcome.Winner, nil
		}
	}
}

// rejectByes fails when any seed is absent
func rejectByes(teams []shared.Team) error {
	for i, team := range teams {
		if team.IsAbsent() {
			return fmt.Errorf("%w: seed %d is empty", ErrByeNotSupported, i+1)
		}
	}
	return nil
}

// checkUpdate validates a replacement team list against the current one
func checkUpdate(current, teams []shared.Team) error {
	if len(teams) != len(current) {
		return fmt.Errorf("%w: expected %d but got %d", shared.ErrWrongTeamCount, len(current), len(teams))
	}
	return nil
}

// wrapFinished maps a terminal bracket error to ErrCupFinished, keeping the original in the chain
func wrapFinished(err error) error {
	if errors.Is(err, bracket.ErrBracketFinished) {
		return fmt.Errorf("%w: %w", ErrCupFinished, err)
	}
	return err
}

func copyTeams(teams []shared.Team) []shared.Team {
	copied := make([]shared.Team, len(teams))
	copy(copied, teams)
	return copied
}

var (
	_ Cup = (*SingleElimination)(nil)
	_ Cup = (*DoubleElimination)(nil)
	_ Cup = (*Stepladder)(nil)
)
