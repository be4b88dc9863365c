package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

const userColumns = "id, username, full_name, created_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	DB core.DB
}

func (r *Repository) Create(ctx context.Context, username, email, fullName string) (core.User, error) {
	user := persistence.User{
		Username: username,
		FullName: fullName,
	}
	if email != "" {
		user.Email = &email
	}

	res := r.DB.Conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if res.Error != nil {
		return core.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return core.User{}, fmt.Errorf("%w: username or email is taken", core.ErrConflict)
	}

	return core.User{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (core.User, error) {
	var user core.User
	err := r.DB.Conn(ctx).
		Model(&persistence.User{}).
		Select(userColumns).
		Where("id = ?", id).
		Take(&user).Error

	return user, persistence.Translate(err, "user", id)
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (core.User, error) {
	var user core.User
	err := r.DB.Conn(ctx).
		Model(&persistence.User{}).
		Select(userColumns).
		Where("username = ?", username).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("%w: user %q", core.ErrNotFound, username)
	}

	return user, err
}

// Search matches keyword case-insensitively anywhere in the username or full name.
func (r *Repository) Search(ctx context.Context, keyword string, limit int) ([]core.User, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"

	var found []core.User
	err := r.DB.Conn(ctx).
		Model(&persistence.User{}).
		Select(userColumns).
		Where(`LOWER(username) LIKE ? ESCAPE '\' OR LOWER(full_name) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&found).Error

	return found, err
}
