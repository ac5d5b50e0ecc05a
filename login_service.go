package techquiry

import (
	"context"
)

// incorrectCredentialsMessage is shared by the unknown-username and
// wrong-password branches so callers cannot probe which usernames exist.
const incorrectCredentialsMessage = "the username or password is incorrect"

// UserLoginService orchestrates the login record lifecycle and the
// login/logout transitions for one session. Every operation reads the
// session slot first: it either requires an anonymous session or an
// authenticated one, and that gate runs before any validation or lookup.
type UserLoginService struct {
	dao     UserLogins
	session SessionHelper
	logger  Logger
}

// NewUserLoginService returns a service bound to the given store and
// session slot. The slot belongs to exactly one session; construct one
// service per inbound request.
func NewUserLoginService(dao UserLogins, session SessionHelper) *UserLoginService {
	return &UserLoginService{
		dao:     dao,
		session: session,
		logger:  defLogger{},
	}
}

func (s *UserLoginService) WithLogger(logger Logger) *UserLoginService {
	s.logger = logger
	return s
}

// CreateLogin inserts the given login record and returns its new id. The
// session must be anonymous; creating an account does not authenticate the
// session. The record must already carry its credential material.
func (s *UserLoginService) CreateLogin(ctx context.Context, login *UserLogin) (int, error) {
	if current := s.session.GetAuthentication(); current != nil {
		return 0, NewForbiddenOperation("creating users while logged-in is forbidden")
	}

	if !ValidUsername(login.Username) {
		return 0, NewInvalidRequest("the given username does not abide by the requirements")
	}

	existing, err := s.dao.SelectFromUsername(ctx, login.Username)
	if err != nil {
		s.logger.Error("create login username lookup failed", "error", err)
		return 0, NewInternalError("an internal error occurred while creating the user", err)
	}

	if existing != nil {
		return 0, NewInvalidRequest("the given username is not available")
	}

	id, err := s.dao.Insert(ctx, login)
	if err != nil {
		// Two sessions racing on the same fresh username both pass the
		// pre-check above; the store's unique constraint rejects the
		// second insert and it surfaces here.
		s.logger.Error("create login insert failed", "error", err)
		return 0, NewInternalError("an internal error occurred while creating the user", err)
	}

	return id, nil
}

// DeleteLogin deletes the authenticated user's own login record and clears
// the session slot. The slot is cleared after the record's existence is
// confirmed but before the destructive delete, so a session never points at
// a just-deleted identity. If the delete itself then fails, the session
// stays logged out while the record survives; that narrow window is
// accepted rather than hidden.
func (s *UserLoginService) DeleteLogin(ctx context.Context) error {
	current := s.session.GetAuthentication()
	if current == nil {
		return NewForbiddenOperation("the requested user deletion is forbidden")
	}

	login, err := s.dao.Select(ctx, current.UserID)
	if err != nil {
		s.logger.Error("delete login lookup failed", "error", err)
		return NewInternalError("an internal error occurred while deleting the user", err)
	}

	if login == nil {
		return NewEntityNotFound("the requested user does not exist")
	}

	s.session.SetAuthentication(nil)

	if err := s.dao.Delete(ctx, current.UserID); err != nil {
		s.logger.Error("delete login failed", "error", err, "user_id", current.UserID)
		return NewInternalError("an internal error occurred while deleting the user", err)
	}

	return nil
}

// UpdateLogin replaces the stored record matching login.ID. Users may only
// update their own record: the session must be authenticated as exactly
// that id. Renaming to one's own current username is a no-op and allowed;
// renaming onto a different account's username is rejected.
func (s *UserLoginService) UpdateLogin(ctx context.Context, login *UserLogin) error {
	current := s.session.GetAuthentication()
	if current == nil || current.UserID != login.ID {
		return NewForbiddenOperation("the requested user update is forbidden")
	}

	if !ValidUsername(login.Username) {
		return NewInvalidRequest("the given username does not abide by the requirements")
	}

	idLogin, err := s.dao.Select(ctx, login.ID)
	if err != nil {
		s.logger.Error("update login lookup failed", "error", err)
		return NewInternalError("an internal error occurred while updating the user", err)
	}

	if idLogin == nil {
		return NewEntityNotFound("the requested user does not exist")
	}

	usernameLogin, err := s.dao.SelectFromUsername(ctx, login.Username)
	if err != nil {
		s.logger.Error("update login username lookup failed", "error", err)
		return NewInternalError("an internal error occurred while updating the user", err)
	}

	if usernameLogin != nil && usernameLogin.ID != login.ID {
		return NewInvalidRequest("the given username is not available")
	}

	if err := s.dao.Update(ctx, login); err != nil {
		s.logger.Error("update login failed", "error", err, "user_id", login.ID)
		return NewInternalError("an internal error occurred while updating the user", err)
	}

	return nil
}

// AuthenticateUser verifies the given credentials and, on success, marks
// the session as logged in as the matching user. The session must be
// anonymous. An unknown username and a wrong password yield the identical
// error.
func (s *UserLoginService) AuthenticateUser(ctx context.Context, username, password string) error {
	if current := s.session.GetAuthentication(); current != nil {
		return NewForbiddenOperation("logging in with an active session is forbidden")
	}

	login, err := s.dao.SelectFromUsername(ctx, username)
	if err != nil {
		s.logger.Error("authenticate username lookup failed", "error", err)
		return NewInternalError("an internal error occurred while authenticating", err)
	}

	if login == nil {
		return NewInvalidRequest(incorrectCredentialsMessage)
	}

	if !VerifyPassword(password, login.PasswordSalt, login.PasswordHash) {
		return NewInvalidRequest(incorrectCredentialsMessage)
	}

	s.session.SetAuthentication(&Authentication{UserID: login.ID})
	return nil
}

// LogoutUser clears the session slot. The session must be authenticated.
func (s *UserLoginService) LogoutUser() error {
	if current := s.session.GetAuthentication(); current == nil {
		return NewForbiddenOperation("logging out with no active session is forbidden")
	}

	s.session.SetAuthentication(nil)
	return nil
}

// GetCurrentLogin returns the login record of the authenticated user.
func (s *UserLoginService) GetCurrentLogin(ctx context.Context) (*UserLogin, error) {
	current := s.session.GetAuthentication()
	if current == nil {
		return nil, NewForbiddenOperation("reading the current user requires an active session")
	}

	login, err := s.dao.Select(ctx, current.UserID)
	if err != nil {
		s.logger.Error("current login lookup failed", "error", err)
		return nil, NewInternalError("an internal error occurred while getting the user", err)
	}

	if login == nil {
		return nil, NewEntityNotFound("the requested user does not exist")
	}

	return login, nil
}
