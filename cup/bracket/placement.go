/* placement.go
 * Contains the winner placement strategies. A Placer is only called for matches that are not in the last round
 */

package bracket

import "knockout-cups/cup/shared"

// Placer pushes the winner of the match at `at` into its slot in the next round
type Placer interface {
	Place(rounds Rounds, at shared.Position, winner shared.Team)
}

// PlacerFunc adapts a function to the Placer interface
type PlacerFunc func(rounds Rounds, at shared.Position, winner shared.Team)

func (f PlacerFunc) Place(rounds Rounds, at shared.Position, winner shared.Team) {
	f(rounds, at, winner)
}

// Binary halves the match index: even matches feed team1, odd matches feed team2 of the next round
var Binary = PlacerFunc(func(rounds Rounds, at shared.Position, winner shared.Team) {
	next := rounds[at.Round+1][at.Match/2]
	if at.Match%2 == 0 {
		next.Team1 = winner
	} else {
		next.Team2 = winner
	}
})

// Ladder feeds team2 of the single match in the next round
var Ladder = PlacerFunc(func(rounds Rounds, at shared.Position, winner shared.Team) {
	rounds[at.Round+1][0].Team2 = winner
})

// Alternating is used by losers brackets. Even rounds keep the match index and feed team2, leaving team1
// free for a dropped-down loser; odd rounds halve like Binary
var Alternating = PlacerFunc(func(rounds Rounds, at shared.Position, winner shared.Team) {
	if at.Round%2 == 0 {
		rounds[at.Round+1][at.Match].Team2 = winner
		return
	}
	Binary(rounds, at, winner)
})
