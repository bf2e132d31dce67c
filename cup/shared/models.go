/* models.go
 * This file contains the types and helper functions that are shared between the cup sub packages
 */

package shared

import (
	"errors"
	"fmt"
)

// Team identifies an entrant. Placeholder labels such as "Match 3 Winner" are Teams too until a real
// entrant overwrites them.
type Team string

// NoTeam marks an absent slot (a bye)
const NoTeam Team = ""

// ErrWrongTeamCount is returned when a team list does not have the length a cup expects
var ErrWrongTeamCount = errors.New("wrong number of teams")

// IsAbsent reports whether the slot holds no entrant
func (t Team) IsAbsent() bool {
	return t == NoTeam
}

func (t Team) String() string {
	return string(t)
}

// Position addresses a match slot inside a bracket as (round, match)
type Position struct {
	Round int
	Match int
}

// DefaultTeams generates the team list used when a cup is created without one
// Preconditions: Receives the number of teams
// Postconditions: Returns "Team 1" .. "Team N"
func DefaultTeams(count int) []Team {
	teams := make([]Team, count)
	for i := range teams {
		teams[i] = Team(fmt.Sprintf("Team %d", i+1))
	}
	return teams
}

// ResolveTeams returns the team list a cup should be seeded with.
// An empty list falls back to DefaultTeams, any other list must contain exactly count teams.
func ResolveTeams(count int, teams []Team) ([]Team, error) {
	if len(teams) == 0 {
		return DefaultTeams(count), nil
	}
	if len(teams) != count {
		return nil, fmt.Errorf("%w: expected %d but got %d", ErrWrongTeamCount, count, len(teams))
	}
	resolved := make([]Team, len(teams))
	copy(resolved, teams)
	return resolved, nil
}

// FromStrings converts plain names into Teams
func FromStrings(names []string) []Team {
	teams := make([]Team, len(names))
	for i, name := range names {
		teams[i] = Team(name)
	}
	return teams
}
