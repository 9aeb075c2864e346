package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func sessionApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.CartSession(secret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"session_id": middleware.SessionID(c)})
	})
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestCartSession_IssuesCookieOnFirstVisit(t *testing.T) {
	app := sessionApp("test_secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	assert.NotNil(t, cookie, "first visit must receive a session cookie")
	assert.NotEmpty(t, cookie.Value)
}

func TestCartSession_ReusesValidToken(t *testing.T) {
	app := sessionApp("test_secret")

	first := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	firstResp, err := app.Test(first)
	assert.NoError(t, err)
	cookie := sessionCookie(t, firstResp)
	assert.NotNil(t, cookie)

	second := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	second.AddCookie(cookie)
	secondResp, err := app.Test(second)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, secondResp.StatusCode)

	// An honored token does not get re-issued.
	assert.Nil(t, sessionCookie(t, secondResp))
}

func TestCartSession_RejectsTamperedToken(t *testing.T) {
	app := sessionApp("test_secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "not-a-jwt"})
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A fresh session replaces the bad token instead of failing.
	cookie := sessionCookie(t, resp)
	assert.NotNil(t, cookie)
	assert.NotEqual(t, "not-a-jwt", cookie.Value)
}

func TestCartSession_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	other := sessionApp("other_secret")
	resp, err := other.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.NoError(t, err)
	foreign := sessionCookie(t, resp)
	assert.NotNil(t, foreign)

	app := sessionApp("test_secret")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(foreign)
	resp, err = app.Test(req)
	assert.NoError(t, err)

	replacement := sessionCookie(t, resp)
	assert.NotNil(t, replacement, "foreign token must be replaced")
	assert.NotEqual(t, foreign.Value, replacement.Value)
}
