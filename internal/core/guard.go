package core

import (
	"fmt"
	"strings"
)

const MinSearchLength = 2

// CheckFollow rejects self-relationships. Must run before the relationship store is touched.
func CheckFollow(followerID, followingID int64) error {
	if followerID == followingID {
		return ErrSelfFollow
	}
	return nil
}

// CheckOwnership returns ErrForbidden unless actorID authored the resource.
func CheckOwnership(actorID, authorID int64, resource string, id int64) error {
	if actorID != authorID {
		return fmt.Errorf("%w: %s %d is owned by another user", ErrForbidden, resource, id)
	}
	return nil
}

// NormalizeContent trims content and rejects it when nothing is left.
func NormalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}

// NormalizeUpdate validates a partial post update in place.
func NormalizeUpdate(update PostUpdate) (PostUpdate, error) {
	if update.Empty() {
		return update, ErrNoChanges
	}
	if update.Content != nil {
		content, err := NormalizeContent(*update.Content)
		if err != nil {
			return update, err
		}
		update.Content = &content
	}
	return update, nil
}

func NormalizeSearch(keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if len([]rune(keyword)) < MinSearchLength {
		return "", ErrSearchTooShort
	}
	return keyword, nil
}
