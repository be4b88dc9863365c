package cmd

import (
	"context"
	"log/slog"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"resty.dev/v3"

	"feedgraph/internal/cmd/flags"
	"feedgraph/internal/config"
	"feedgraph/pkg/feedclient"
)

var feedCmd = &cli.Command{
	Name:  "feed",
	Usage: "Print the feed of a user from a running server",
	Flags: []cli.Flag{
		flags.ServerURL,
		flags.UserID,
		flags.Limit,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		cfg, err := parseConfig(c)
		if err != nil {
			return err
		}

		return run(ctx, cfg, pal.Provide(&feedPrinter{}))
	},
}

type feedPrinter struct {
	Logger *slog.Logger
	Config *config.Config
}

// Run walks the feed with cursors until it is exhausted.
func (p *feedPrinter) Run(ctx context.Context) error {
	client := feedclient.NewClient(&feedclient.ClientConfig{
		BaseURL:             p.Config.ServerURL,
		UserID:              p.Config.UserID,
		ResponseMiddlewares: []resty.ResponseMiddleware{feedclient.MetricMiddleware},
	})
	defer client.Close() //nolint:errcheck

	cursor := ""
	for {
		page, err := client.Feed(ctx, 0, p.Config.Limit, cursor)
		if err != nil {
			return err
		}

		for _, post := range page.Items {
			pp.Printf("%s @%s: %s\n", post.CreatedAt.Format("2006-01-02 15:04"), post.Username, post.Content) //nolint:errcheck
		}

		if !page.Pagination.HasMore || page.Pagination.NextCursor == "" {
			p.Logger.Debug("Feed exhausted", "user_id", p.Config.UserID)
			return nil
		}
		cursor = page.Pagination.NextCursor
	}
}
