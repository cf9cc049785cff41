package models

import "time"

type Review struct {
	ID        string
	Rating    int
	Content   string
	AuthorID  string
	GameID    string
	CreatedAt time.Time
}
