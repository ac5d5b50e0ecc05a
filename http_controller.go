package techquiry

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
const SessionCookieName = "techquiry_session"

type LoginControllerRoutes struct {
	User        string
	UserByID    string
	CurrentUser string
	Login       string
	Logout      string
}

// LoginController maps HTTP requests onto the lifecycle service. Each
// request gets its own UserLoginService bound to the request's session
// slot.
type LoginController struct {
	Debug    bool
	Logger   Logger
	Repo     RepositoryManager
	Sessions *SessionManager
	Routes   *LoginControllerRoutes
}

type LoginControllerOption func(*LoginController) *LoginController

func WithControllerLogger(logger Logger) LoginControllerOption {
	return func(c *LoginController) *LoginController {
		c.Logger = logger
		return c
	}
}

func WithControllerDebug(debug bool) LoginControllerOption {
	return func(c *LoginController) *LoginController {
		c.Debug = debug
		return c
	}
}

func WithControllerRepo(repo RepositoryManager) LoginControllerOption {
	return func(c *LoginController) *LoginController {
		c.Repo = repo
		return c
	}
}

func WithControllerSessions(sessions *SessionManager) LoginControllerOption {
	return func(c *LoginController) *LoginController {
		c.Sessions = sessions
		return c
	}
}

func NewLoginController(opts ...LoginControllerOption) *LoginController {
	c := &LoginController{
		Logger: defLogger{},
		Routes: &LoginControllerRoutes{
			User:        "/api/user",
			UserByID:    "/api/user/:id",
			CurrentUser: "/api/user/current",
			Login:       "/api/auth/login",
			Logout:      "/api/auth/logout",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in login controller...")
	}

	if c.Sessions == nil {
		panic("Missing SessionManager in login controller...")
	}

	return c
}

// RegisterRoutes attaches the session middleware and the account routes to
// the given app.
func (a *LoginController) RegisterRoutes(app *fiber.App) {
	app.Use(a.EnsureSession)

	app.Post(a.Routes.User, a.CreateUser)
	app.Get(a.Routes.CurrentUser, a.CurrentUser)
	app.Put(a.Routes.UserByID, a.UpdateUser)
	app.Delete(a.Routes.User, a.DeleteUser)

	app.Post(a.Routes.Login, a.Login)
	app.Post(a.Routes.Logout, a.Logout)
}

// EnsureSession guarantees every request carries a session cookie, issuing
// a fresh identifier when needed.
func (a *LoginController) EnsureSession(c *fiber.Ctx) error {
	sessionID := c.Cookies(SessionCookieName)
	if sessionID == "" {
		sessionID = NewSessionID()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	c.Locals(SessionCookieName, sessionID)
	return c.Next()
}

func (a *LoginController) service(c *fiber.Ctx) *UserLoginService {
	sessionID, _ := c.Locals(SessionCookieName).(string)
	helper := a.Sessions.Helper(sessionID)
	return NewUserLoginService(a.Repo.UserLogins(), helper).WithLogger(a.Logger)
}

// CreateUserPayload is the account creation body
type CreateUserPayload struct {
	Username    string `form:"username" json:"username"`
	Password    string `form:"password" json:"password"`
	DisplayName string `form:"display_name" json:"display_name"`
}

// Validate will validate the payload
func (r CreateUserPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Match(usernamePattern)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.DisplayName, validation.Length(0, 100)),
	)
}

func (a *LoginController) CreateUser(c *fiber.Ctx) error {
	payload := new(CreateUserPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("create user parse payload", "error", err)
		return a.renderError(c, NewInvalidRequest("failed to parse the request body"))
	}

	if err := payload.Validate(); err != nil {
		return a.renderError(c, NewInvalidRequest(err.Error()))
	}

	if a.Debug {
		fmt.Println("======= CREATE USER ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("==========================")
	}

	login := &UserLogin{
		Username:    payload.Username,
		DisplayName: payload.DisplayName,
	}

	if err := login.SetPassword(payload.Password); err != nil {
		return a.renderError(c, err)
	}

	id, err := a.service(c).CreateLogin(c.Context(), login)
	if err != nil {
		return a.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user_id": id,
	})
}

// UpdateUserPayload is the account update body. An empty password keeps the
// stored credential material.
type UpdateUserPayload struct {
	Username    string `form:"username" json:"username"`
	Password    string `form:"password" json:"password"`
	DisplayName string `form:"display_name" json:"display_name"`
}

// Validate will validate the payload
func (r UpdateUserPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Match(usernamePattern)),
		validation.Field(&r.Password, validation.Length(8, 100)),
		validation.Field(&r.DisplayName, validation.Length(0, 100)),
	)
}

func (a *LoginController) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return a.renderError(c, NewInvalidRequest("the user id must be an integer"))
	}

	payload := new(UpdateUserPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("update user parse payload", "error", err)
		return a.renderError(c, NewInvalidRequest("failed to parse the request body"))
	}

	if err := payload.Validate(); err != nil {
		return a.renderError(c, NewInvalidRequest(err.Error()))
	}

	svc := a.service(c)

	login := &UserLogin{
		ID:          id,
		Username:    payload.Username,
		DisplayName: payload.DisplayName,
	}

	if payload.Password != "" {
		if err := login.SetPassword(payload.Password); err != nil {
			return a.renderError(c, err)
		}
	} else {
		// Keep the stored hash/salt pair intact when no new password is
		// supplied.
		current, err := svc.GetCurrentLogin(c.Context())
		if err != nil {
			return a.renderError(c, err)
		}
		login.PasswordHash = current.PasswordHash
		login.PasswordSalt = current.PasswordSalt
	}

	if err := svc.UpdateLogin(c.Context(), login); err != nil {
		return a.renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *LoginController) DeleteUser(c *fiber.Ctx) error {
	if err := a.service(c).DeleteLogin(c.Context()); err != nil {
		return a.renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *LoginController) CurrentUser(c *fiber.Ctx) error {
	login, err := a.service(c).GetCurrentLogin(c.Context())
	if err != nil {
		return a.renderError(c, err)
	}

	return c.JSON(login.WithoutCredentials())
}

// AuthPayload is the login body
type AuthPayload struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will validate the payload
func (r AuthPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *LoginController) Login(c *fiber.Ctx) error {
	payload := new(AuthPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return a.renderError(c, NewInvalidRequest("failed to parse the request body"))
	}

	if err := payload.Validate(); err != nil {
		return a.renderError(c, NewInvalidRequest(err.Error()))
	}

	if err := a.service(c).AuthenticateUser(c.Context(), payload.Username, payload.Password); err != nil {
		return a.renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *LoginController) Logout(c *fiber.Ctx) error {
	if err := a.service(c).LogoutUser(); err != nil {
		return a.renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *LoginController) renderError(c *fiber.Ctx, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		a.Logger.Error("unexpected error", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	status := fiber.StatusInternalServerError
	message := richErr.Message

	switch richErr.TextCode {
	case TextCodeForbiddenOperation:
		status = fiber.StatusForbidden
	case TextCodeInvalidRequest:
		status = fiber.StatusBadRequest
	case TextCodeEntityNotFound:
		status = fiber.StatusNotFound
	default:
		// Internal failures are an operational concern; log the cause and
		// keep the response generic.
		a.Logger.Error("internal error", "error", err)
		message = "internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  richErr.TextCode,
	})
}
