package services

import (
	"errors"

	"github.com/Norne9/pravda-server/apperrors"
	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/store"
	"github.com/Norne9/pravda-server/utils"
)

// DefaultPassword is assigned to new accounts and on admin resets. Users
// are expected to change it on first login.
const DefaultPassword = "Qwer4321"

// AuthService owns credentials and sessions: digest verification, bearer
// token issuance and rotation, and account creation/reset.
type AuthService struct {
	Store store.Store
}

func NewAuthService(s store.Store) *AuthService {
	return &AuthService{Store: s}
}

// Login verifies the credentials and rotates the user's bearer token.
// An unknown login and a wrong password are indistinguishable to the
// caller; a failed attempt leaves the existing token valid.
func (a *AuthService) Login(login, password string) (*models.User, error) {
	user, err := a.Store.GetUserByLogin(login)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrLoginFailed
		}
		return nil, err
	}
	if user.PwdHash != utils.PasswordDigest(password, user.PwdSalt) {
		return nil, apperrors.ErrLoginFailed
	}
	user.Token = utils.NewSecret()
	if err := a.Store.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveToken maps a bearer token back to its user. An empty token is
// Forbidden (nothing was presented); a non-empty token that matches no
// user is UnknownToken.
func (a *AuthService) ResolveToken(token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrForbidden
	}
	user, err := a.Store.GetUserByToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrUnknownToken
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword is self-service: the old password must verify. The salt
// and digest are regenerated; the session token is left alone.
func (a *AuthService) ChangePassword(user *models.User, oldPassword, newPassword string) error {
	if user.PwdHash != utils.PasswordDigest(oldPassword, user.PwdSalt) {
		return apperrors.ErrLoginFailed
	}
	user.PwdSalt = utils.NewSecret()
	user.PwdHash = utils.PasswordDigest(newPassword, user.PwdSalt)
	return a.Store.UpdateUser(user)
}

// ResetPassword forces the account back to the default password and
// rotates both salt and token, so any live session for it dies.
func (a *AuthService) ResetPassword(id uint) error {
	user, err := a.Store.GetUserByID(id)
	if err != nil {
		return err
	}
	user.PwdSalt = utils.NewSecret()
	user.PwdHash = utils.PasswordDigest(DefaultPassword, user.PwdSalt)
	user.Token = utils.NewSecret()
	return a.Store.UpdateUser(user)
}

// AddUser creates an account with the default password, a fresh salt and
// a fresh token. Duplicate logins are rejected before touching the store.
func (a *AuthService) AddUser(user *models.User) error {
	_, err := a.Store.GetUserByLogin(user.Login)
	if err == nil {
		return apperrors.ErrUserExist
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	user.PwdSalt = utils.NewSecret()
	user.PwdHash = utils.PasswordDigest(DefaultPassword, user.PwdSalt)
	user.Token = utils.NewSecret()
	return a.Store.AddUser(user)
}
