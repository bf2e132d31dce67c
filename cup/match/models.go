/* models.go
 * Contains the Match type shared by every bracket, and the Score and Side helpers used to record results
 */

package match

import (
	"fmt"
	"strconv"

	"knockout-cups/cup/shared"
)

// Side names one of the two slots of a match
type Side int

const (
	Undecided Side = iota
	Team1
	Team2
)

// Score is a single team's score in a match. The zero value is an unplayed (blank) score
type Score struct {
	Value    int
	Recorded bool
}

// Scored returns a recorded score
func Scored(value int) Score {
	return Score{Value: value, Recorded: true}
}

// String renders the score, or an empty string when nothing has been recorded yet
func (s Score) String() string {
	if !s.Recorded {
		return ""
	}
	return strconv.Itoa(s.Value)
}

// Match is a contest between two slots. Each slot is written once when the bracket is built (seed or
// placeholder label) and once more when the winner of a preceding match is pushed in
type Match struct {
	Team1  shared.Team
	Team2  shared.Team
	Score1 Score
	Score2 Score
	Winner shared.Team
	Loser  shared.Team
}

// New creates an unplayed match
func New(team1, team2 shared.Team) *Match {
	return &Match{Team1: team1, Team2: team2}
}

// Placeholder label for the winner of a numbered match, e.g. "Match 3 Winner"
func WinnerLabel(number int) shared.Team {
	return shared.Team(fmt.Sprintf("Match %d Winner", number))
}

// Placeholder label for the loser of a numbered match, e.g. "Match 3 Loser"
func LoserLabel(number int) shared.Team {
	return shared.Team(fmt.Sprintf("Match %d Loser", number))
}

// Placeholder label for the winner of a numbered losers bracket match, e.g. "Match L3 Winner"
func LosersWinnerLabel(number int) shared.Team {
	return shared.Team(fmt.Sprintf("Match L%d Winner", number))
}

func (m *Match) String() string {
	return fmt.Sprintf("%s %s - %s %s", m.Team1, m.Score1, m.Score2, m.Team2)
}

// ShortString renders only the scoreline
func (m *Match) ShortString() string {
	return fmt.Sprintf("%s-%s", m.Score1, m.Score2)
}

// IsWalkover reports whether exactly one slot is empty
func (m *Match) IsWalkover() bool {
	return m.Team1.IsAbsent() != m.Team2.IsAbsent()
}

// IsEmpty reports whether both slots are empty
func (m *Match) IsEmpty() bool {
	return m.Team1.IsAbsent() && m.Team2.IsAbsent()
}

// Decided reports whether the match has a winner
func (m *Match) Decided() bool {
	return !m.Winner.IsAbsent()
}

// ResolveWalkover awards the match to the only team present without playing it
// Preconditions: IsWalkover is true
// Postconditions: Winner is the present team, Loser is NoTeam, scores stay blank
func (m *Match) ResolveWalkover() shared.Team {
	if m.Team1.IsAbsent() {
		m.Winner = m.Team2
	} else {
		m.Winner = m.Team1
	}
	m.Loser = shared.NoTeam
	return m.Winner
}

// Play simulates the match once and records the scores.
// Returns false when the simulation did not produce a winner, in which case Winner and Loser are cleared
func (m *Match) Play(sim Simulator) bool {
	result := sim.Simulate(m.Team1, m.Team2)
	m.Score1 = Scored(result.Score1)
	m.Score2 = Scored(result.Score2)

	switch result.Winner {
	case Team1:
		m.Winner, m.Loser = m.Team1, m.Team2
	case Team2:
		m.Winner, m.Loser = m.Team2, m.Team1
	default:
		m.Winner, m.Loser = shared.NoTeam, shared.NoTeam
		return false
	}
	return true
}

// PlayUntilDecided replays the match until the simulator produces a winner.
// Termination is the simulator's responsibility: it must decide with probability 1
func (m *Match) PlayUntilDecided(sim Simulator) shared.Team {
	for !m.Play(sim) {
	}
	return m.Winner
}
