/* losers_bracket.go
 * Contains the losers bracket of a power-of-two double elimination cup. Losers of the winners bracket drop
 * in one at a time: the first ones fill the opening round, the rest are written into team1 of the minor
 * round matches following a fixed placement table
 */

package logic

import (
	"fmt"
	"log/slog"
	"slices"

	"knockout-cups/cup/bracket"
	"knockout-cups/cup/layout"
	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"
)

// LosersBracket alternates minor rounds, where a dropped-down loser meets a losers bracket survivor, and
// major rounds, where survivors meet each other
type LosersBracket struct {
	*bracket.Bracket

	placements      []shared.Position
	firstRoundTeams int
	added           int
}

// NewLosersBracket builds the losers bracket paired with a winners bracket of `winnersRounds` rounds
func NewLosersBracket(winnersRounds int, sim match.Simulator, logger *slog.Logger) (*LosersBracket, error) {
	if winnersRounds < 2 {
		return nil, fmt.Errorf("%w: losers bracket needs a winners bracket of at least 2 rounds, got %d",
			ErrNotEnoughRounds, winnersRounds)
	}
	placements := LoserPlacements(winnersRounds - 1)
	return &LosersBracket{
		Bracket:         bracket.New("losers", buildLosersBracket(winnersRounds), bracket.Alternating, sim, logger),
		placements:      placements,
		firstRoundTeams: len(placements) + 1,
	}, nil
}

func buildLosersBracket(winnersRounds int) bracket.Rounds {
	matchCount := 1 << (winnersRounds - 2)
	first := make([]*match.Match, matchCount)
	for i := range first {
		first[i] = match.New(match.LoserLabel(2*i+1), match.LoserLabel(2*i+2))
	}
	rounds := bracket.Rounds{first}

	feed := WinnerFeed(winnersRounds)
	next := 0
	losersNum := 1
	for range winnersRounds - 1 {
		minor := make([]*match.Match, matchCount)
		for i := range minor {
			minor[i] = match.New(match.LoserLabel(feed[next]), match.LosersWinnerLabel(losersNum))
			next++
			losersNum++
		}
		rounds = append(rounds, minor)
		if matchCount == 1 {
			break
		}

		matchCount /= 2
		major := make([]*match.Match, matchCount)
		for i := range major {
			major[i] = match.New(match.LosersWinnerLabel(losersNum), match.LosersWinnerLabel(losersNum+1))
			losersNum += 2
		}
		rounds = append(rounds, major)
	}
	return rounds
}

// WinnerFeed returns the winners bracket match numbers whose losers drop into the minor rounds, in the
// order the minor round slots are laid out. For 3 rounds this is [6 5 7]
func WinnerFeed(winnersRounds int) []int {
	index := 1 << (winnersRounds - 1)
	pairs := index / 2
	numbers := make([]int, 0, index)
	for range pairs {
		numbers = append(numbers, index+2, index+1)
		index += 2
	}
	return slices.Delete(numbers, len(numbers)-2, len(numbers)-1)
}

// LoserPlacements returns the losers bracket slots filled by winners bracket losers after the opening
// round, in the order the losers arrive. For 2 phases this is [(1,1) (1,0) (3,0)]
func LoserPlacements(phases int) []shared.Position {
	var placements []shared.Position
	for phase := range phases {
		pairs := 1 << max(phases-phase-2, 0)
		for pair := range pairs {
			placements = append(placements,
				shared.Position{Round: 2*phase + 1, Match: 2*pair + 1},
				shared.Position{Round: 2*phase + 1, Match: 2 * pair},
			)
		}
	}
	return slices.Delete(placements, len(placements)-2, len(placements)-1)
}

// AddTeam drops a loser into the next free slot
func (l *LosersBracket) AddTeam(team shared.Team) error {
	if l.added < l.firstRoundTeams {
		m := l.Rounds[0][l.added/2]
		if l.added%2 == 0 {
			m.Team1 = team
		} else {
			m.Team2 = team
		}
		l.added++
		return nil
	}

	next := l.added - l.firstRoundTeams
	if next >= len(l.placements) {
		return fmt.Errorf("%w: %d teams already added", ErrLosersBracketFull, l.added)
	}
	at := l.placements[next]
	l.Rounds[at.Round][at.Match].Team1 = team
	l.added++
	return nil
}

// Placements returns a copy of the placement table
func (l *LosersBracket) Placements() []shared.Position {
	return slices.Clone(l.placements)
}

// FirstRoundTeams is the number of losers that fill the opening round
func (l *LosersBracket) FirstRoundTeams() int {
	return l.firstRoundTeams
}

// PlayMatch plays the next losers bracket match
func (l *LosersBracket) PlayMatch() (bracket.Outcome, error) {
	outcome, err := l.Bracket.PlayMatch()
	return outcome, wrapFinished(err)
}

func (l *LosersBracket) Print() string {
	return layout.Render(layout.LosersBracket(l.Rounds))
}
