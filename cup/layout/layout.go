/* layout.go
 * Contains the layout engine. Each function maps the rounds of a bracket onto a grid of rows and columns,
 * one column per round, without touching the bracket itself
 */

package layout

import (
	"knockout-cups/cup/bracket"
	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"
)

// Cell is one team slot of a match placed in the grid. The zero value is a blank cell
type Cell struct {
	Team   shared.Team
	Score  match.Score
	Filled bool
}

// Grid is indexed [row][column]
type Grid [][]Cell

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Columns returns the number of columns, taken from the first row
func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// walker hands out the slots of one round in order: team1, team2, next match team1, ...
type walker struct {
	rounds    bracket.Rounds
	round     int
	matchNum  int
	firstTeam bool
}

func newWalker(rounds bracket.Rounds) *walker {
	return &walker{rounds: rounds, firstTeam: true}
}

func (w *walker) start(round int) {
	w.round = round
	w.matchNum = 0
	w.firstTeam = true
}

// next returns the next slot of the round when the row is populated, a blank cell otherwise.
// Walkovers consume their two rows but render blank
func (w *walker) next(populated bool) Cell {
	if !populated || w.round >= len(w.rounds) || w.matchNum >= len(w.rounds[w.round]) {
		return Cell{}
	}

	m := w.rounds[w.round][w.matchNum]
	var cell Cell
	if !m.IsWalkover() {
		if w.firstTeam {
			cell = Cell{Team: m.Team1, Score: m.Score1, Filled: true}
		} else {
			cell = Cell{Team: m.Team2, Score: m.Score2, Filled: true}
		}
	}
	if !w.firstTeam {
		w.matchNum++
	}
	w.firstTeam = !w.firstTeam
	return cell
}

// SingleElimination lays out a binary bracket. With 2N leaf rows (N first round matches), round r
// occupies every 2*2^r rows starting at row 2^r - 1
func SingleElimination(rounds bracket.Rounds) Grid {
	if len(rounds) == 0 {
		return nil
	}
	lineCount := len(rounds[0])*4 - 1
	grid := make(Grid, lineCount)
	w := newWalker(rounds)

	for round := range rounds {
		w.start(round)
		div := 2 << round
		mod := div/2 - 1
		for i := range lineCount {
			grid[i] = append(grid[i], w.next(i%div == mod))
		}
	}
	return grid
}

// LosersBracket lays out a losers bracket of len(rounds)/2 phases. Within a phase both rounds share
// the stride 2*2^phase; the minor round starts at row 2^(phases-1) and the major round 2^phase rows higher
func LosersBracket(rounds bracket.Rounds) Grid {
	phases := len(rounds) / 2
	if phases == 0 {
		return nil
	}
	first := 1 << (phases - 1)
	lineCount := first*5 - 1
	grid := make(Grid, lineCount)
	w := newWalker(rounds)

	column := func(round, offset, div int) {
		w.start(round)
		for i := range lineCount {
			if i < offset {
				grid[i] = append(grid[i], Cell{})
				continue
			}
			grid[i] = append(grid[i], w.next((i-offset)%div == 0))
		}
	}

	for phase := range phases {
		div := 2 << phase
		column(phase*2, first, div)
		column(phase*2+1, first-(1<<phase), div)
	}
	return grid
}

// Stepladder lays out a ladder of single match rounds. Round r puts team1 on row R-r-1 and team2 two
// rows below it, so each winner sits next to the entrant it meets in the following round
func Stepladder(rounds bracket.Rounds) Grid {
	roundCount := len(rounds)
	if roundCount == 0 {
		return nil
	}
	lineCount := roundCount + 2
	grid := make(Grid, lineCount)
	for i := range grid {
		grid[i] = make([]Cell, roundCount)
	}

	for round := range rounds {
		m := rounds[round][0]
		line := roundCount - round - 1
		grid[line][round] = Cell{Team: m.Team1, Score: m.Score1, Filled: true}
		grid[line+2][round] = Cell{Team: m.Team2, Score: m.Score2, Filled: true}
	}
	return grid
}
