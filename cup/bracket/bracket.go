/* bracket.go
 * Contains the generic bracket: a grid of rounds, a cursor pointing at the next match, and the play/advance
 * state machine. Where a winner goes next is decided by the Placer the bracket is built with
 */

package bracket

import (
	"errors"
	"log/slog"

	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"
)

var (
	// ErrBracketFinished is returned by PlayMatch once the bracket has produced its winner
	ErrBracketFinished = errors.New("bracket has already finished")
	// ErrNoMatchesLeft is returned when the cursor runs past the last round without reaching a terminal match
	ErrNoMatchesLeft = errors.New("no playable matches left in bracket")
)

// Outcome is what PlayMatch returns: the winner of the match just played, and whether that match ended the bracket
type Outcome struct {
	Winner   shared.Team
	Finished bool
}

// Continuing wraps a winner of a non-terminal match
func Continuing(winner shared.Team) Outcome {
	return Outcome{Winner: winner}
}

// Finished wraps the overall winner of a bracket
func Finished(winner shared.Team) Outcome {
	return Outcome{Winner: winner, Finished: true}
}

// Rounds is the match grid of a bracket, indexed [round][match]
type Rounds [][]*match.Match

// Bracket plays its matches in round-major order
type Bracket struct {
	Name   string
	Rounds Rounds

	placer Placer
	sim    match.Simulator
	logger *slog.Logger

	cursor   shared.Position
	winner   shared.Team
	finished bool
}

// New creates a bracket with its cursor before the first match
func New(name string, rounds Rounds, placer Placer, sim match.Simulator, logger *slog.Logger) *Bracket {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bracket{
		Name:   name,
		Rounds: rounds,
		placer: placer,
		sim:    sim,
		logger: logger.With("bracket", name),
		cursor: shared.Position{Round: 0, Match: -1},
	}
}

// Cursor returns the position of the match played last
func (b *Bracket) Cursor() shared.Position {
	return b.cursor
}

// CurrentMatch returns the match under the cursor, or nil before the first match
func (b *Bracket) CurrentMatch() *match.Match {
	if b.cursor.Match < 0 || b.cursor.Round >= len(b.Rounds) || b.cursor.Match >= len(b.Rounds[b.cursor.Round]) {
		return nil
	}
	return b.Rounds[b.cursor.Round][b.cursor.Match]
}

// Winner returns the bracket winner and whether it has been decided
func (b *Bracket) Winner() (shared.Team, bool) {
	return b.winner, b.finished
}

// IsFinished reports whether the terminal match has been played
func (b *Bracket) IsFinished() bool {
	return b.finished
}

// RoundOver reports whether the active round has no playable matches left after the cursor.
// Walkovers do not count as playable
func (b *Bracket) RoundOver() bool {
	if b.cursor.Round >= len(b.Rounds) {
		return true
	}
	round := b.Rounds[b.cursor.Round]
	for i := b.cursor.Match + 1; i < len(round); i++ {
		if !round[i].IsWalkover() {
			return false
		}
	}
	return true
}

// PlayMatch advances the cursor to the next playable match, plays it until it is decided and places the
// winner in the next round. Walkovers met on the way are resolved and placed without being reported.
// When the played match is in the last round the bracket becomes terminal and a Finished outcome is returned
func (b *Bracket) PlayMatch() (Outcome, error) {
	if b.finished {
		return Outcome{}, ErrBracketFinished
	}

	for {
		m, err := b.advance()
		if err != nil {
			return Outcome{}, err
		}

		walkover := m.IsWalkover()
		var winner shared.Team
		if walkover {
			winner = m.ResolveWalkover()
			b.logger.Debug("walkover awarded", "round", b.cursor.Round, "match", b.cursor.Match, "winner", winner)
		} else {
			winner = m.PlayUntilDecided(b.sim)
			b.logger.Debug("match played", "round", b.cursor.Round, "match", b.cursor.Match,
				"winner", winner, "score", m.ShortString())
		}

		if b.cursor.Round+1 >= len(b.Rounds) {
			b.finished = true
			b.winner = winner
			b.logger.Info("bracket finished", "winner", winner)
			return Finished(winner), nil
		}
		b.placer.Place(b.Rounds, b.cursor, winner)

		if !walkover {
			return Continuing(winner), nil
		}
	}
}

// advance moves the cursor one match forward in round-major order
func (b *Bracket) advance() (*match.Match, error) {
	b.cursor.Match++
	for b.cursor.Round < len(b.Rounds) && b.cursor.Match >= len(b.Rounds[b.cursor.Round]) {
		b.cursor.Round++
		b.cursor.Match = 0
	}
	if b.cursor.Round >= len(b.Rounds) {
		return nil, ErrNoMatchesLeft
	}
	return b.Rounds[b.cursor.Round][b.cursor.Match], nil
}
