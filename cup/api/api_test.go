/* api_test.go
 * Contains unit tests for api.go
 */

package api

import (
	"context"
	"testing"
	"time"

	"knockout-cups/cup/bracket"
	"knockout-cups/cup/logic"
	"knockout-cups/cup/match"
	"knockout-cups/cup/registry"
	"knockout-cups/cup/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTeams(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []shared.Team
		err      error
	}{
		{"plain", "NaVi Vitality G2", []shared.Team{"NaVi", "Vitality", "G2"}, nil},
		{"quoted", `"Faze Clan" NaVi`, []shared.Team{"Faze Clan", "NaVi"}, nil},
		{"smart quotes", "“Team Liquid” MOUZ", []shared.Team{"Team Liquid", "MOUZ"}, nil},
		{"bye", "NaVi bye G2 BYE", []shared.Team{"NaVi", shared.NoTeam, "G2", shared.NoTeam}, nil},
		{"extra spaces", "  NaVi   G2 ", []shared.Team{"NaVi", "G2"}, nil},
		{"duplicate", "NaVi G2 navi", nil, ErrDuplicateTeam},
		{"empty", "   ", nil, ErrNoTeams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, err := ParseTeams(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, teams)
		})
	}
}

func TestRandomTeams(t *testing.T) {
	teams, err := RandomTeams(16)

	require.NoError(t, err)
	assert.Len(t, teams, 16)
	seen := make(map[shared.Team]bool)
	for _, team := range teams {
		assert.False(t, team.IsAbsent())
		assert.False(t, seen[team], "duplicate name %s", team)
		seen[team] = true
	}
}

func TestNewCup(t *testing.T) {
	a := NewAPI(nil, nil)

	cup, err := a.NewCup(CupRequest{
		Type:      registry.StandardSingle,
		Teams:     []shared.Team{"A", "B", shared.NoTeam, "D"},
		Simulator: match.FixedSimulator{},
	})
	require.NoError(t, err)
	assert.IsType(t, &logic.SingleElimination{}, cup)
	assert.Equal(t, []shared.Team{"A", "B", shared.NoTeam, "D"}, cup.Teams())

	cup, err = a.NewCup(CupRequest{Type: registry.Stepladder, Teams: []shared.Team{"A", "B", "C"}})
	require.NoError(t, err)
	assert.Len(t, cup.Teams(), 3)

	cup, err = a.NewCup(CupRequest{Type: registry.PowerOfTwoDouble, Rounds: 3, RequireDoubleWin: true})
	require.NoError(t, err)
	assert.Len(t, cup.Teams(), 8)
}

func TestNewCup_Errors(t *testing.T) {
	a := NewAPI(nil, nil)

	_, err := a.NewCup(CupRequest{})
	assert.ErrorIs(t, err, ErrNoCupType)

	_, err = a.NewCup(CupRequest{Type: "double"})
	assert.ErrorIs(t, err, registry.ErrCupNotFound)

	_, err = a.NewCup(CupRequest{Type: registry.PowerOfTwoDouble, Teams: []shared.Team{"A", shared.NoTeam, "C", "D"}})
	assert.ErrorIs(t, err, logic.ErrByeNotSupported)

	_, err = a.NewCup(CupRequest{Type: registry.PowerOfTwoSingle, Teams: []shared.Team{"A", "B", "C"}})
	assert.ErrorIs(t, err, shared.ErrWrongTeamCount)
}

func TestPlayCup(t *testing.T) {
	a := NewAPI(nil, nil)
	cup, err := a.NewCup(CupRequest{Type: registry.Stepladder, TeamCount: 4, Simulator: match.FixedSimulator{}})
	require.NoError(t, err)

	var outcomes []bracket.Outcome
	winner, err := a.PlayCup(context.Background(), cup, 0, func(o bracket.Outcome) {
		outcomes = append(outcomes, o)
	})

	require.NoError(t, err)
	assert.Equal(t, shared.Team("Team 4"), winner)
	assert.Equal(t, []bracket.Outcome{
		bracket.Continuing("Team 1"),
		bracket.Continuing("Team 3"),
		bracket.Finished("Team 4"),
	}, outcomes)
}

func TestPlayCup_Paced(t *testing.T) {
	a := NewAPI(nil, nil)
	cup, err := a.NewCup(CupRequest{Type: registry.PowerOfTwoSingle, Rounds: 2, Simulator: match.FixedSimulator{}})
	require.NoError(t, err)

	start := time.Now()
	winner, err := a.PlayCup(context.Background(), cup, 50, nil)

	require.NoError(t, err)
	assert.Equal(t, shared.Team("Team 1"), winner)
	// first match uses the burst, the other two wait 20ms each
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestPlayCup_Cancelled(t *testing.T) {
	a := NewAPI(nil, nil)
	cup, err := a.NewCup(CupRequest{Type: registry.PowerOfTwoSingle, Rounds: 2, Simulator: match.FixedSimulator{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.PlayCup(ctx, cup, 0, nil)

	assert.ErrorIs(t, err, context.Canceled)
	_, finished := cup.Winner()
	assert.False(t, finished)
}

func TestFindTeam(t *testing.T) {
	a := NewAPI(nil, nil)
	cup, err := a.NewCup(CupRequest{
		Type:  registry.StandardSingle,
		Teams: []shared.Team{"Faze Clan", "NaVi", shared.NoTeam, "Natus Vincere Academy"},
	})
	require.NoError(t, err)

	team, err := a.FindTeam(cup, "navi")
	require.NoError(t, err)
	assert.Equal(t, shared.Team("NaVi"), team)

	team, err = a.FindTeam(cup, "faze")
	require.NoError(t, err)
	assert.Equal(t, shared.Team("Faze Clan"), team)

	_, err = a.FindTeam(cup, "astralis")
	assert.ErrorIs(t, err, ErrUnknownTeam)
}

func TestCupTypes(t *testing.T) {
	assert.Equal(t, registry.Default().Names(), NewAPI(nil, nil).CupTypes())
}
