package feedclient

import (
	"context"
	"strconv"
)

func (c *Client) CreatePost(ctx context.Context, content string, mediaURL *string) (*Post, error) {
	res, err := c.r(ctx).
		SetBody(map[string]any{
			"content":   content,
			"media_url": mediaURL,
		}).
		SetResult(&Post{}).
		Post("/posts")
	if err := check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*Post), nil
}

func (c *Client) Like(ctx context.Context, postID int64) error {
	return check(c.r(ctx).Post("/posts/" + strconv.FormatInt(postID, 10) + "/likes"))
}

// Feed fetches a page of the acting user's feed. A non-empty cursor continues a previous page
// and takes precedence over page.
func (c *Client) Feed(ctx context.Context, page, limit int, cursor string) (*FeedPage, error) {
	req := c.r(ctx).SetResult(&FeedPage{})

	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	} else if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}

	res, err := req.Get("/feed")
	if err := check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*FeedPage), nil
}
