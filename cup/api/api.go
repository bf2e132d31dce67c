/* api.go
 * This file contains the public methods front ends use to build and play cups. Functions should be called
 * from here rather than from the cup sub packages directly, so that input is validated the same way everywhere
 */

package api

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"strings"

	"knockout-cups/cup/bracket"
	"knockout-cups/cup/logic"
	"knockout-cups/cup/registry"
	"knockout-cups/cup/shared"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/time/rate"
)

// API builds cups from raw input and drives them
type API struct {
	Registry *registry.Registry
	Logger   *slog.Logger
}

// NewAPI creates a new API instance. A nil registry means the built-in cup formats, a nil logger discards
func NewAPI(reg *registry.Registry, logger *slog.Logger) *API {
	if reg == nil {
		reg = registry.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &API{Registry: reg, Logger: logger}
}

// CupTypes returns the codes of every registered cup format
func (a *API) CupTypes() []string {
	return a.Registry.Names()
}

// NewCup resolves the cup type and builds the cup. When teams are given but no size is, the size is derived
// from the team count: rounds = log2(len(teams)) for bracket cups, len(teams) for the stepladder
func (a *API) NewCup(req CupRequest) (logic.Cup, error) {
	if req.Type == "" {
		return nil, ErrNoCupType
	}
	constructor, err := a.Registry.Resolve(req.Type)
	if err != nil {
		return nil, err
	}

	rounds := req.Rounds
	if rounds == 0 && len(req.Teams) > 1 {
		rounds = bits.Len(uint(len(req.Teams))) - 1
	}

	cup, err := constructor(logic.Options{
		Rounds:           rounds,
		TeamCount:        req.TeamCount,
		Teams:            req.Teams,
		RequireDoubleWin: req.RequireDoubleWin,
		Simulator:        req.Simulator,
		Logger:           a.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s cup: %w", req.Type, err)
	}

	a.Logger.Info("cup created", "type", req.Type, "teams", len(cup.Teams()))
	return cup, nil
}

// PlayCup plays a cup to the end and returns its champion. With matchesPerSecond > 0 play is paced so a
// watcher can follow along. onMatch, when set, is called after every match with its outcome.
// Cancelling ctx stops play between matches
func (a *API) PlayCup(ctx context.Context, cup logic.Cup, matchesPerSecond float64, onMatch func(bracket.Outcome)) (shared.Team, error) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if matchesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(matchesPerSecond), 1)
	}

	played := 0
	for {
		if err := limiter.Wait(ctx); err != nil {
			return shared.NoTeam, fmt.Errorf("cup stopped after %d matches: %w", played, err)
		}

		outcome, err := cup.PlayMatch()
		if err != nil {
			return shared.NoTeam, err
		}
		played++
		if onMatch != nil {
			onMatch(outcome)
		}

		if outcome.Finished {
			a.Logger.Info("cup played", "matches", played, "winner", outcome.Winner)
			return outcome.Winner, nil
		}
	}
}

// FindTeam looks a team of the cup up by a loose name. An exact (case insensitive) match wins, otherwise the
// best ranked fuzzy match is used
func (a *API) FindTeam(cup logic.Cup, query string) (shared.Team, error) {
	lookup := make(map[string]shared.Team)
	var lowered []string
	for _, team := range cup.Teams() {
		if team.IsAbsent() {
			continue
		}
		lower := strings.ToLower(team.String())
		lookup[lower] = team
		lowered = append(lowered, lower)
	}

	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	if team, ok := lookup[lowerQuery]; ok {
		return team, nil
	}

	ranks := fuzzy.RankFind(lowerQuery, lowered)
	if len(ranks) == 0 {
		return shared.NoTeam, fmt.Errorf("%w: %q", ErrUnknownTeam, query)
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return lookup[best.Target], nil
}

// ParseTeams splits a space separated team list. Multi word names are quoted, e.g. `"Faze Clan" NaVi BYE`.
// The BYE token (any case) is an empty seed. Duplicate names are rejected
func ParseTeams(input string) ([]shared.Team, error) {
	// splitter keeps quoted names with spaces in them as one token
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTeam, err)
	}

	seen := make(map[string]bool)
	var teams []shared.Team
	for _, part := range parts {
		name := strings.TrimSpace(strings.NewReplacer("\"", "", "“", "", "”", "").Replace(part))
		if name == "" {
			continue
		}
		if strings.EqualFold(name, ByeToken) {
			teams = append(teams, shared.NoTeam)
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTeam, name)
		}
		seen[key] = true
		teams = append(teams, shared.Team(name))
	}

	if len(teams) == 0 {
		return nil, ErrNoTeams
	}
	return teams, nil
}

// RandomTeams generates count distinct two word team names
func RandomTeams(count int) ([]shared.Team, error) {
	seen := make(map[string]bool, count)
	teams := make([]shared.Team, 0, count)
	for attempts := 0; len(teams) < count; attempts++ {
		if attempts > count*100 {
			return nil, fmt.Errorf("%w: wanted %d", ErrTooManyRetries, count)
		}
		name := petname.Generate(2, "-")
		if seen[name] {
			continue
		}
		seen[name] = true
		teams = append(teams, shared.Team(name))
	}
	return teams, nil
}
