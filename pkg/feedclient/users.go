package feedclient

import (
	"context"
	"strconv"
)

func (c *Client) CreateUser(ctx context.Context, username, email, fullName string) (*User, error) {
	res, err := c.r(ctx).
		SetBody(map[string]string{
			"username":  username,
			"email":     email,
			"full_name": fullName,
		}).
		SetResult(&User{}).
		Post("/users")
	if err := check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*User), nil
}

func (c *Client) Follow(ctx context.Context, userID int64) error {
	return check(c.r(ctx).Post("/users/" + strconv.FormatInt(userID, 10) + "/follow"))
}

func (c *Client) Unfollow(ctx context.Context, userID int64) error {
	return check(c.r(ctx).Delete("/users/" + strconv.FormatInt(userID, 10) + "/follow"))
}
