package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// SessionOptions configures the session cookie. The cookie value is the
// username itself; there is no server-side session table.
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type AuthHandler struct {
	authService ports.AuthService
	session     SessionOptions
}

func NewAuthHandler(authService ports.AuthService, session SessionOptions) *AuthHandler {
	return &AuthHandler{authService: authService, session: session}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    sessionUser `json:"user"`
}

type checkAuthResponse struct {
	LoggedIn bool         `json:"loggedIn"`
	User     *sessionUser `json:"user,omitempty"`
}

// Login verifies credentials and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  response
// @Failure      500   {object}  response
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	c.SetCookie(h.cookie(user.Username, h.session.TTL))

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		User:    sessionUser{Username: user.Username, Role: user.Role},
	})
}

// Logout clears the session cookie. It succeeds whether or not a session
// was present.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var username string
	if cookie, err := c.Cookie(h.session.CookieName); err == nil {
		username = cookie.Value
	}

	c.SetCookie(h.cookie("", -1))
	h.authService.Logout(c.Request().Context(), username)

	return ok(c, "Logged out")
}

// CheckAuth reports the identity resolved for the current request.
//
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  checkAuthResponse
// @Router       /check-auth [get]
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	who := caller(c)
	if !who.IsAuthenticated() {
		return c.JSON(http.StatusOK, checkAuthResponse{LoggedIn: false})
	}
	return c.JSON(http.StatusOK, checkAuthResponse{
		LoggedIn: true,
		User:     &sessionUser{Username: who.Identity.Username, Role: who.Identity.Role},
	})
}

// cookie builds the session cookie. A negative ttl expires it immediately.
func (h *AuthHandler) cookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.session.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		return cookie
	}
	cookie.MaxAge = int(ttl / time.Second)
	cookie.Expires = time.Now().Add(ttl)
	return cookie
}
