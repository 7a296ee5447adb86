package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/model"
	"daily-planner/pkg/response"
)

const (
	scopeKey  = "scope"
	loginPath = "/login"
)

type loginReq struct {
	Password string `json:"password" form:"password"`
}

// Auth rejects requests without a valid session cookie: API calls get 401, pages are
// redirected to the login form. It is a pass-through when the gate is disabled.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Set(scopeKey, model.Scope{UserID: sessionSubject, Source: model.SourceWeb})
			c.Next()
			return
		}

		token, err := c.Cookie(m.cookieName)
		if err == nil {
			var sp sessionPayload
			if sp, err = verifyToken(m.secret, token, m.now()); err == nil {
				c.Set(scopeKey, model.Scope{UserID: sp.Sub, Source: model.SourceWeb})
				c.Next()
				return
			}
		}

		m.l.Debugf(c.Request.Context(), "middleware.Auth: %s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
		if isAPIRequest(c) {
			response.Unauthorized(c)
		} else {
			c.Redirect(http.StatusSeeOther, loginPath)
		}
		c.Abort()
	}
}

// Login checks the password and sets the session cookie. Attempts are rate limited per
// client IP.
func (m Middleware) Login(c *gin.Context) {
	ctx := c.Request.Context()

	if !m.Enabled() {
		m.loginDone(c)
		return
	}

	if err := m.limiter.Allow(c.ClientIP()); err != nil {
		m.l.Warnf(ctx, "middleware.Login: %v", err)
		response.TooManyRequests(c)
		return
	}

	var req loginReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if !m.checkPassword(req.Password) {
		m.l.Warnf(ctx, "middleware.Login: wrong password from %s", c.ClientIP())
		if isFormPost(c) {
			c.Redirect(http.StatusSeeOther, loginPath+"?failed=1")
			return
		}
		response.Unauthorized(c)
		return
	}

	token, err := m.newSessionToken()
	if err != nil {
		m.l.Errorf(ctx, "middleware.Login: newSessionToken: %v", err)
		response.InternalError(c, err)
		return
	}

	m.setCookie(c, token, int(m.ttl.Seconds()))
	m.loginDone(c)
}

// Logout clears the session cookie.
func (m Middleware) Logout(c *gin.Context) {
	m.setCookie(c, "", -1)
	if isFormPost(c) {
		c.Redirect(http.StatusSeeOther, loginPath)
		return
	}
	response.OK(c, map[string]bool{"logged_in": false})
}

func (m Middleware) loginDone(c *gin.Context) {
	if isFormPost(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	response.OK(c, map[string]bool{"logged_in": true})
}

func (m Middleware) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, value, maxAge, "/", "", m.secure, true)
}

// Scope returns the caller scope set by Auth.
func Scope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{Source: model.SourceWeb}
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}

func isFormPost(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEPOSTForm
}
