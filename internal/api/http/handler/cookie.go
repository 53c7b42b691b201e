package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie names are part of the API contract.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieHelper manages the auth cookie pair. Both cookies are always
// http-only; the secure flag and domain come from configuration.
type CookieHelper struct {
	domain string
	secure bool
	maxAge int
}

// NewCookieHelper creates a cookie helper. maxAge is the cookie lifetime in
// seconds, applied to both cookies.
func NewCookieHelper(domain string, secure bool, maxAge int) *CookieHelper {
	return &CookieHelper{domain: domain, secure: secure, maxAge: maxAge}
}

// SetAuthCookies sets both access and refresh token cookies.
func (h *CookieHelper) SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	h.setCookie(c, AccessTokenCookie, accessToken, h.maxAge)
	h.setCookie(c, RefreshTokenCookie, refreshToken, h.maxAge)
}

// ClearAuthCookies removes both cookies, not merely expires them.
func (h *CookieHelper) ClearAuthCookies(c *gin.Context) {
	h.setCookie(c, AccessTokenCookie, "", -1)
	h.setCookie(c, RefreshTokenCookie, "", -1)
}

// GetAccessToken retrieves the access token from cookie.
func (h *CookieHelper) GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// GetRefreshToken retrieves the refresh token from cookie.
func (h *CookieHelper) GetRefreshToken(c *gin.Context) string {
	token, err := c.Cookie(RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", h.domain, h.secure, true)
}
