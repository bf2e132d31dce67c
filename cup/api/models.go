/* models.go
 * Contains the request type and the input errors of the api package
 */

package api

import (
	"errors"

	"knockout-cups/cup/match"
	"knockout-cups/cup/shared"
)

var (
	ErrNoTeams        = errors.New("no teams given")
	ErrDuplicateTeam  = errors.New("duplicate team name")
	ErrInvalidTeam    = errors.New("invalid team name")
	ErrUnknownTeam    = errors.New("team not found in cup")
	ErrNoCupType      = errors.New("cup type is required")
	ErrTooManyRetries = errors.New("could not generate enough unique team names")
)

// ByeToken is the team list token for an empty seed
const ByeToken = "BYE"

// CupRequest describes a cup to build
type CupRequest struct {
	// Type is a registered cup code
	Type string
	// Rounds sizes bracket cups, TeamCount sizes a stepladder. Either is derived from Teams when zero
	Rounds    int
	TeamCount int
	Teams     []shared.Team
	// RequireDoubleWin only applies to double elimination
	RequireDoubleWin bool
	Simulator        match.Simulator
}
