package player

import "fmt"

// Player is the canonical record of an MLB player as the stats API identifies it.
// Team holds the club abbreviation the player is listed under.
type Player struct {
	ID   int64
	Name string
	Team string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be > 0")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Team == "" {
		return fmt.Errorf("player team is required")
	}

	return nil
}
