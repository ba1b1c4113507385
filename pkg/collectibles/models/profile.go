package models

import (
	"fmt"
	"time"
)

// CurrentProfileVersion is the schema version written by this module.
const CurrentProfileVersion = 2

// PlayerHouse is one of the four school houses.
type PlayerHouse string

const (
	HouseGryffindor PlayerHouse = "Gryffindor"
	HouseHufflepuff PlayerHouse = "Hufflepuff"
	HouseRavenclaw  PlayerHouse = "Ravenclaw"
	HouseSlytherin  PlayerHouse = "Slytherin"
)

// Valid reports whether h is a known house.
func (h PlayerHouse) Valid() bool {
	switch h {
	case HouseGryffindor, HouseHufflepuff, HouseRavenclaw, HouseSlytherin:
		return true
	}
	return false
}

// PlayerInformation holds the player's identity.
type PlayerInformation struct {
	// Name is the player name; must not be empty.
	Name string `json:"name"`
	// House is the player's house.
	House PlayerHouse `json:"house"`
	// ProfilePicture is an optional base64 image.
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// CompletedItems maps type id to item id to completion state.
type CompletedItems map[string]map[string]bool

// Set marks itemID of typeID as completed (or not).
func (c CompletedItems) Set(typeID, itemID string, done bool) {
	items, ok := c[typeID]
	if !ok {
		items = make(map[string]bool)
		c[typeID] = items
	}
	items[itemID] = done
}

// IsCompleted reports whether itemID of typeID is marked completed.
func (c CompletedItems) IsCompleted(typeID, itemID string) bool {
	return c[typeID][itemID]
}

// PlayerProfile is the current (version 2) persisted player state.
type PlayerProfile struct {
	// Version is always CurrentProfileVersion.
	Version int `json:"version"`
	// Player holds the player's identity.
	Player PlayerInformation `json:"player"`
	// CompletedItems holds completion state keyed by type id, then item id.
	CompletedItems CompletedItems `json:"completedItems"`
	// LastUpdated is an RFC 3339 timestamp with offset.
	LastUpdated string `json:"lastUpdated"`
}

// Validate checks the profile shape.
func (p *PlayerProfile) Validate() error {
	var errs ValidationErrors
	if p.Version != CurrentProfileVersion {
		errs.add("version", "expected %d, got %d", CurrentProfileVersion, p.Version)
	}
	if p.Player.Name == "" {
		errs.add("player.name", "Name cannot be empty")
	}
	if !p.Player.House.Valid() {
		errs.add("player.house", "unknown house %q", p.Player.House)
	}
	if p.CompletedItems == nil {
		errs.add("completedItems", "must be present")
	}
	if err := validateTimestamp(p.LastUpdated); err != nil {
		errs.add("lastUpdated", "%v", err)
	}
	return errs.orNil()
}

func validateTimestamp(value string) error {
	if _, err := time.Parse(time.RFC3339Nano, value); err != nil {
		return fmt.Errorf("invalid datetime %q", value)
	}
	return nil
}
