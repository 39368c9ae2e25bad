package models

import "encoding/json"

// Team is a participating team. Only the name is client-supplied; everything
// else about a team (group assignment, points, results) is computed by the
// backend and travels inside the opaque Tournament fields.
type Team struct {
	Name string `json:"name"`
}

// Tournament is the client's view of a tournament record. The backend owns
// the canonical copy; groups, schedule and results are server-computed and
// kept as raw JSON so the client passes them through unchanged.
type Tournament struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	GroupCount   int    `json:"groupCount"`
	PlayoffSpots int    `json:"playoffSpots"`
	Teams        []Team `json:"teams"`

	Groups   json.RawMessage `json:"groups,omitempty"`
	Schedule json.RawMessage `json:"schedule,omitempty"`
	Results  json.RawMessage `json:"results,omitempty"`
	Playoffs json.RawMessage `json:"playoffs,omitempty"`
}

// CreateTournamentRequest is the body of POST /tournaments.
type CreateTournamentRequest struct {
	Name         string `json:"name"`
	GroupCount   int    `json:"groupCount"`
	PlayoffSpots int    `json:"playoffSpots"`
	Teams        []Team `json:"teams"`
}

// MatchResult carries one reported match score for POST
// /tournaments/{id}/matches and /tournaments/{id}/playoffs.
type MatchResult struct {
	MatchID   string `json:"matchId"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
}
