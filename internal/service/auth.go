package service

import (
	"net/http"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/forum-dev/forum-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the narrow auth boundary the forum core relies on: it turns
// credentials into an authenticated user id and nothing more. Password
// hashing and token signing never leave this package and the token service.
type AuthService interface {
	Register(username, password, fullname string) (domain.RegisteredUser, error)
	Login(username, password string) (string, error)
}

type Auth struct {
	storage UserStorage
	token   TokenIssuer
}

type UserStorage interface {
	// VerifyUsernameAvailable fails when the username is already taken.
	VerifyUsernameAvailable(username string) error
	CreateUser(user domain.User) (domain.RegisteredUser, error)
	GetUserByUsername(username string) (domain.User, error)
}

type TokenIssuer interface {
	NewToken(userId string) (string, error)
}

func NewAuth(storage UserStorage, token TokenIssuer) AuthService {
	return &Auth{storage, token}
}

func (a *Auth) Register(username, password, fullname string) (domain.RegisteredUser, error) {
	if err := a.storage.VerifyUsernameAvailable(username); err != nil {
		return domain.RegisteredUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}

	return a.storage.CreateUser(domain.User{
		Username: username,
		Password: string(passHash),
		Fullname: fullname,
	})
}

var errBadCredentials = &internal_errors.ErrorWithStatusCode{
	Message:    "kredensial yang anda masukkan salah",
	StatusCode: http.StatusUnauthorized,
}

func (a *Auth) Login(username, password string) (string, error) {
	user, err := a.storage.GetUserByUsername(username)
	if err != nil {
		if internal_errors.Is[*internal_errors.NotFoundError](err) {
			// Unknown username and wrong password are indistinguishable.
			return "", errBadCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errBadCredentials
	}

	return a.token.NewToken(user.Id)
}
