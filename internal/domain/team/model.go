package team

import "fmt"

// Team is the canonical record of an MLB club as the stats API identifies it.
type Team struct {
	ID           int64
	Name         string
	Abbreviation string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be > 0")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Abbreviation == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}
