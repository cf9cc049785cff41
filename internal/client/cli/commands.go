package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gamezone/gamezone/internal/api"
	"github.com/gamezone/gamezone/internal/common"
)

var ErrUsage = errors.New("usage")

func usage(line string) error {
	return fmt.Errorf("%w: %s", ErrUsage, line)
}

func (a *App) Register(ctx context.Context, args []string) error {
	var name string
	if len(args) > 0 {
		name = strings.Join(args, " ")
	} else {
		n, err := GetSimpleText(a.reader, "Author name", a.out)
		if err != nil {
			return err
		}
		name = n
	}
	if name == "" {
		return usage("register <name>")
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	verified, err := GetYesNo(a.reader, "Mark as verified?", a.out)
	if err != nil {
		return err
	}

	author, err := a.session.Register(ctx, name, email, password, verified)
	if err != nil {
		return err
	}
	a.author = name

	fmt.Fprintf(a.out, "Registered %s (%s); token stored and active\n", author.Name, author.ID)
	return nil
}

func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("use <name>")
	}
	name := strings.Join(args, " ")
	if err := a.session.Use(ctx, name); err != nil {
		return err
	}
	a.author = name
	fmt.Fprintf(a.out, "Now acting as %s\n", name)
	return nil
}

func (a *App) Tokens(ctx context.Context, _ []string) error {
	known, err := a.session.Known(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tACCOUNT\tSTORED")
	for _, t := range known {
		mark := ""
		if t.Name == a.author {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, t.Name, t.AccountID, t.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func (a *App) Authors(ctx context.Context, _ []string) error {
	authors, err := a.api.Authors(ctx)
	if err != nil {
		return err
	}
	a.printAuthors(authors)
	return nil
}

func (a *App) Author(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("author <id>")
	}
	resp, err := a.api.Author(ctx, args[0])
	if err != nil {
		return err
	}
	a.printAuthors([]api.Author{resp.Author})
	fmt.Fprintln(a.out)
	a.printReviews(resp.Reviews)
	return nil
}

func (a *App) Games(ctx context.Context, _ []string) error {
	games, err := a.api.Games(ctx)
	if err != nil {
		return err
	}
	a.printGames(games)
	return nil
}

func (a *App) Game(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("game <id>")
	}
	resp, err := a.api.Game(ctx, args[0])
	if err != nil {
		return err
	}
	a.printGames([]api.Game{resp.Game})
	fmt.Fprintln(a.out)
	a.printReviews(resp.Reviews)
	return nil
}

func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("page <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("page <n>")
	}
	games, err := a.api.GamePage(ctx, n)
	if err != nil {
		return err
	}
	a.printGames(games)
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("search <pattern>")
	}
	games, err := a.api.GamesByTitle(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printGames(games)
	return nil
}

func (a *App) AddGame(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("add-game <title> <platform,...>")
	}
	title := strings.Join(args[:len(args)-1], " ")
	var platforms []string
	for _, p := range strings.Split(args[len(args)-1], ",") {
		if p = strings.TrimSpace(p); p != "" {
			platforms = append(platforms, p)
		}
	}

	g, err := a.api.AddGame(ctx, title, platforms)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added game %s (%s)\n", g.Title, g.ID)
	return nil
}

func (a *App) DeleteGame(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete-game <id>")
	}
	remaining, err := a.api.DeleteGame(ctx, args[0])
	if err != nil {
		return err
	}
	a.printGames(remaining)
	return nil
}

func (a *App) Reviews(ctx context.Context, _ []string) error {
	reviews, err := a.api.Reviews(ctx)
	if err != nil {
		return err
	}
	a.printReviews(reviews)
	return nil
}

func (a *App) Review(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("review <game-id> <rating> [content]")
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return usage("review <game-id> <rating> [content]")
	}

	content := strings.Join(args[2:], " ")
	if content == "" {
		content, err = GetMultiline(a.reader, "Review text", a.out)
		if err != nil {
			return err
		}
	}

	r, err := a.api.AddReview(ctx, args[0], rating, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Review %s submitted\n", r.ID)
	return nil
}

func (a *App) printGames(games []api.Game) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPLATFORMS")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.ID, g.Title, strings.Join(g.Platforms, ", "))
	}
	_ = tw.Flush()
}

func (a *App) printReviews(reviews []api.Review) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGAME\tAUTHOR\tRATING\tCONTENT")
	for _, r := range reviews {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.GameID, r.AuthorID, r.Rating, r.Content)
	}
	_ = tw.Flush()
}

func (a *App) printAuthors(authors []api.Author) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tVERIFIED")
	for _, au := range authors {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", au.ID, au.Name, au.Email, au.Verified)
	}
	_ = tw.Flush()
}
