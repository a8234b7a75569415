package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

var errUsernameTaken = &internal_errors.ErrorWithStatusCode{
	Message:    "username tidak tersedia",
	StatusCode: http.StatusBadRequest,
}

func (s *Storage) VerifyUsernameAvailable(username string) error {
	var taken bool
	err := s.db.QueryRow(`
        SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)
    `, username).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return errUsernameTaken
	}
	return nil
}

func (s *Storage) CreateUser(user domain.User) (domain.RegisteredUser, error) {
	id := s.gen.Generate("user")

	_, err := s.db.Exec(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
    `, id, user.Username, user.Password, user.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.RegisteredUser{}, errUsernameTaken
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return domain.RegisteredUser{Id: id, Username: user.Username, Fullname: user.Fullname}, nil
}

func (s *Storage) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.NotFoundError{Resource: "user"}
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
