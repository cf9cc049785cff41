package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

var ErrUnknownCommand = errors.New("unknown command")

const helpText = `Available commands:
  register [name]                      create an author and store its token
  use <name>                           attach a stored author's token to calls
  tokens                               list stored authors
  authors                              list authors (verified author required)
  author <id>                          show an author with their reviews
  games                                list games
  game <id>                            show a game with its reviews
  page <n>                             show one page of games
  search <pattern>                     find games by title (regular expression)
  add-game <title> <platform,...>      add a game
  delete-game <id>                     delete a game
  reviews                              list reviews
  review <game-id> <rating> [content]  review a game as the active author
  exit | quit`

// execIface is the command surface the dispatcher needs; App satisfies it.
type execIface interface {
	Register(ctx context.Context, args []string) error
	Use(ctx context.Context, args []string) error
	Tokens(ctx context.Context, args []string) error
	Authors(ctx context.Context, args []string) error
	Author(ctx context.Context, args []string) error
	Games(ctx context.Context, args []string) error
	Game(ctx context.Context, args []string) error
	Page(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	AddGame(ctx context.Context, args []string) error
	DeleteGame(ctx context.Context, args []string) error
	Reviews(ctx context.Context, args []string) error
	Review(ctx context.Context, args []string) error
}

// dispatch runs the command in parts[0]. It reports quit for exit and quit.
func dispatch(ctx context.Context, a execIface, parts []string) (quit bool, err error) {
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		printlnFn(helpText)
		return false, nil
	case "exit", "quit":
		return true, nil
	case "register":
		return false, a.Register(ctx, args)
	case "use":
		return false, a.Use(ctx, args)
	case "tokens":
		return false, a.Tokens(ctx, args)
	case "authors":
		return false, a.Authors(ctx, args)
	case "author":
		return false, a.Author(ctx, args)
	case "games":
		return false, a.Games(ctx, args)
	case "game":
		return false, a.Game(ctx, args)
	case "page":
		return false, a.Page(ctx, args)
	case "search":
		return false, a.Search(ctx, args)
	case "add-game":
		return false, a.AddGame(ctx, args)
	case "delete-game":
		return false, a.DeleteGame(ctx, args)
	case "reviews":
		return false, a.Reviews(ctx, args)
	case "review":
		return false, a.Review(ctx, args)
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// runREPL reads commands from reader until EOF, exit or quit. Command errors
// are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gz (%s) > ", statusFn()))

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) > 0 {
			quit, cmdErr := dispatch(ctx, a, parts)
			if cmdErr != nil {
				printlnFn("error:", cmdErr)
			}
			if quit {
				printlnFn("Bye!")
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("error:", err)
			}
			return
		}
	}
}
