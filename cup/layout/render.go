/* render.go
 * Contains the fixed-width text renderer for layout grids. The exact column widths are relied on by
 * printouts compared byte for byte
 */

package layout

import (
	"strings"

	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"

	"github.com/mattn/go-runewidth"
)

const (
	TeamWidth  = 30
	ScoreWidth = 4
	Padding    = 5
	// CellWidth is the width of one rendered column
	CellWidth = TeamWidth + 1 + ScoreWidth + Padding
	// finalWidth is the width of the grand final block's team rows
	finalWidth = TeamWidth + 1 + ScoreWidth + 1 + ScoreWidth + Padding
)

var (
	blankCell = strings.Repeat(" ", CellWidth)
	blankHalf = strings.Repeat(" ", finalWidth)
)

// RenderCell renders a cell as the team left-justified, a space, the score right-justified and the padding
func RenderCell(cell Cell) string {
	if !cell.Filled {
		return blankCell
	}
	return runewidth.FillRight(cell.Team.String(), TeamWidth) + " " +
		runewidth.FillLeft(cell.Score.String(), ScoreWidth) + strings.Repeat(" ", Padding)
}

// Render turns a grid into text: a leading newline, then every row followed by a newline
func Render(grid Grid) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, row := range grid {
		for _, cell := range row {
			b.WriteString(RenderCell(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderFinal renders a grand final that may have been played twice.
// games[g] holds the (team1, team2) scores of game g; an unplayed game renders blank
func RenderFinal(final *match.Match, games [2][2]match.Score) string {
	row := func(team shared.Team, first, second match.Score) string {
		return runewidth.FillRight(team.String(), TeamWidth) + " " +
			runewidth.FillLeft(first.String(), ScoreWidth) + " " +
			runewidth.FillLeft(second.String(), ScoreWidth) + strings.Repeat(" ", Padding) + blankHalf
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(row(final.Team1, games[0][0], games[1][0]))
	b.WriteString("\n")
	b.WriteString(blankHalf + blankHalf)
	b.WriteString("\n")
	b.WriteString(row(final.Team2, games[0][1], games[1][1]))
	b.WriteString("\n")
	return b.String()
}
