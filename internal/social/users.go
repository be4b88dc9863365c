package social

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"feedgraph/internal/core"
)

func (s *Service) CreateUser(ctx context.Context, username, email, fullName string) (user core.User, err error) {
	ctx, done := s.track(ctx, "create_user", attribute.String("feedgraph.username", username))
	defer done(&err)

	username = strings.TrimSpace(username)
	if username == "" {
		return user, fmt.Errorf("%w: username is required", core.ErrInvalidInput)
	}

	return s.Users.Create(ctx, username, strings.TrimSpace(email), strings.TrimSpace(fullName))
}

func (s *Service) GetUser(ctx context.Context, id int64) (user core.User, err error) {
	ctx, done := s.track(ctx, "get_user", idAttr("user_id", id))
	defer done(&err)

	return s.Users.Get(ctx, id)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (user core.User, err error) {
	ctx, done := s.track(ctx, "get_user_by_username", attribute.String("feedgraph.username", username))
	defer done(&err)

	return s.Users.GetByUsername(ctx, username)
}

// SearchUsers finds users whose username or full name contains keyword, ignoring case.
func (s *Service) SearchUsers(ctx context.Context, keyword string, limit int) (found []core.User, err error) {
	ctx, done := s.track(ctx, "search_users")
	defer done(&err)

	keyword, err = core.NormalizeSearch(keyword)
	if err != nil {
		return nil, err
	}

	return orEmpty(s.Users.Search(ctx, keyword, core.NormalizeLimit(limit)))
}
