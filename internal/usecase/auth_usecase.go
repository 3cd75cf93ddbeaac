package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/dinesh-manogaran/Career-Compass/internal/dto"
	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/dinesh-manogaran/Career-Compass/internal/service"
	"github.com/dinesh-manogaran/Career-Compass/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type AuthMode string

const (
	ModeLogin  AuthMode = "login"
	ModeSignup AuthMode = "signup"
)

// User-facing auth flow messages.
const (
	MsgFillAllFields       = "Please fill all fields."
	MsgPasswordMismatch    = "Passwords do not match."
	MsgLoggingIn           = "Logging in..."
	MsgSigningUp           = "Creating account and logging you in..."
	MsgLoginFailed         = "Login failed"
	MsgSignupFailed        = "Signup failed"
	MsgCreatedButNotLogged = "Account created, but login failed."
	MsgAuthConnectivity    = "Error connecting to server"
	MsgSessionSaveFailed   = "Could not save your session. Please try again."

	// Password reset is intentionally unimplemented; selecting it only ever
	// shows this notice.
	MsgForgotPassword = "For this project, password reset is not implemented.\nPlease contact the admin to reset."
)

// AuthController drives the login/signup flow. It owns the mode toggle, the
// pre-flight validation, and the signup -> auto-login chain; the issued token
// goes straight into the session store.
type AuthController struct {
	mu       sync.Mutex
	svc      service.CompassServiceInterface
	store    session.Store
	validate *validator.Validate

	mode    AuthMode
	email   string
	message string
}

func NewAuthController(svc service.CompassServiceInterface, store session.Store) *AuthController {
	return &AuthController{
		svc:      svc,
		store:    store,
		validate: validator.New(),
		mode:     ModeLogin,
	}
}

// SwitchMode toggles between login and signup. Any stale message is dropped;
// password fields never outlive a mode switch, the email does.
func (c *AuthController) SwitchMode(mode AuthMode) {
	if mode != ModeLogin && mode != ModeSignup {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
	c.message = ""
}

// ForgotPassword returns a fixed notice. No network call, no state change.
func (c *AuthController) ForgotPassword() string {
	return MsgForgotPassword
}

// Submit runs the current mode's flow for the given credentials. It returns
// true when a session was established and the caller should move to the
// dashboard.
func (c *AuthController) Submit(ctx context.Context, creds model.Credentials) bool {
	c.mu.Lock()
	mode := c.mode
	c.email = creds.Email
	c.mu.Unlock()

	if mode == ModeSignup {
		return c.submitSignup(ctx, creds)
	}
	return c.submitLogin(ctx, creds)
}

func (c *AuthController) submitLogin(ctx context.Context, creds model.Credentials) bool {
	if err := c.validate.Struct(creds); err != nil {
		c.setMessage(MsgFillAllFields)
		return false
	}

	c.setMessage(MsgLoggingIn)

	token, err := c.svc.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		c.setMessage(messageFor(err, MsgLoginFailed))
		return false
	}

	return c.establishSession(token)
}

func (c *AuthController) submitSignup(ctx context.Context, creds model.Credentials) bool {
	signup := model.SignupCredentials{
		Email:           creds.Email,
		Password:        creds.Password,
		ConfirmPassword: creds.ConfirmPassword,
	}
	if err := c.validate.Struct(signup); err != nil {
		c.setMessage(signupValidationMessage(err))
		return false
	}

	c.setMessage(MsgSigningUp)

	if err := c.svc.Register(ctx, creds.Email, creds.Password); err != nil {
		c.setMessage(messageFor(err, MsgSignupFailed))
		return false
	}

	// Auto-login with the same credentials. If this fails the account exists
	// but the session does not; there is no retry and no rollback.
	token, err := c.svc.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		c.setMessage(messageFor(err, MsgCreatedButNotLogged))
		return false
	}

	return c.establishSession(token)
}

func (c *AuthController) establishSession(token string) bool {
	if err := c.store.Set(token); err != nil {
		log.Error().Err(err).Msg("failed to persist session token")
		c.setMessage(MsgSessionSaveFailed)
		return false
	}
	c.setMessage("")
	return true
}

func (c *AuthController) setMessage(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = message
}

// Snapshot returns the entry view's current state.
func (c *AuthController) Snapshot() dto.AuthViewDTO {
	c.mu.Lock()
	defer c.mu.Unlock()
	return dto.AuthViewDTO{Mode: string(c.mode), Email: c.email, Message: c.message}
}

// signupValidationMessage distinguishes the password-mismatch rule from plain
// missing fields.
func signupValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == "eqfield" {
				return MsgPasswordMismatch
			}
		}
	}
	return MsgFillAllFields
}

// messageFor picks the user-visible message for a failed remote call: the
// server's detail verbatim when present, the operation fallback for a bare
// rejection, and the connectivity notice for transport failures.
func messageFor(err error, fallback string) string {
	var re *service.RemoteError
	if errors.As(err, &re) {
		if re.Detail != "" {
			return re.Detail
		}
		return fallback
	}
	return MsgAuthConnectivity
}
