package api

import "time"

type Game struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Platforms []string  `json:"platforms"`
	CreatedAt time.Time `json:"created_at"`
}

type Review struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	GameID    string    `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Author is the public view of an account.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

type Empty struct{}

type IDRequest struct {
	ID string `json:"id"`
}

type GamePageRequest struct {
	PageNo int `json:"page_no"`
}

type GamesByTitleRequest struct {
	Title string `json:"title"`
}

type AddGameRequest struct {
	Title     string   `json:"title"`
	Platforms []string `json:"platforms"`
}

// UpdateGameRequest leaves fields that are null untouched.
type UpdateGameRequest struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Platforms *[]string `json:"platforms,omitempty"`
}

type AddAuthorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Verified bool   `json:"verified"`
}

// AddReviewRequest is submitted on behalf of the authenticated caller.
// AuthorID is accepted for compatibility and ignored.
type AddReviewRequest struct {
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
	GameID   string `json:"game_id"`
	AuthorID string `json:"author_id,omitempty"`
}

type GamesResponse struct {
	Games []Game `json:"games"`
}

type GameResponse struct {
	Game    Game     `json:"game"`
	Reviews []Review `json:"reviews"`
}

type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type ReviewResponse struct {
	Review Review `json:"review"`
	Author Author `json:"author"`
	Game   Game   `json:"game"`
}

type AuthorsResponse struct {
	Authors []Author `json:"authors"`
}

type AuthorResponse struct {
	Author  Author   `json:"author"`
	Reviews []Review `json:"reviews"`
}

type AddAuthorResponse struct {
	Author Author `json:"author"`
	Token  string `json:"token"`
}
