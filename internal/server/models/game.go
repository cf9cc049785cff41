package models

import "time"

type Game struct {
	ID        string
	Title     string
	Platforms []string
	CreatedAt time.Time
}

// GameUpdate carries the fields of a partial update; nil means "keep".
type GameUpdate struct {
	Title     *string
	Platforms *[]string
}
