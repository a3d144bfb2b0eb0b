package backend

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/records"
	"github.com/tartampluch/priroda-razuma/internal/session"
)

// Login signs in with a login and password and starts the session.
func (c *Client) Login(ctx context.Context, login, password string) error {
	if login == "" {
		return errors.New(config.ErrLoginEmpty)
	}
	form := url.Values{}
	form.Set(config.FormUsername, login)
	form.Set(config.FormPassword, password)

	var tr records.TokenResponse
	if err := c.call(ctx, func() (request, error) {
		return formRequest(config.PathLogin, form), nil
	}, &tr); err != nil {
		return err
	}

	c.Session.Start(login, tr)
	if c.Store != nil {
		c.Store.Persist(c.Session)
	}
	slog.Info(config.MsgLoggedIn,
		config.LogKeyComponent, config.CompSession,
		config.LogKeyUser, login,
		config.LogKeyUserID, tr.UserID,
	)
	return nil
}

// Resume restores a session from the refresh token stored for login.
func (c *Client) Resume(ctx context.Context, login string) error {
	if c.Store == nil {
		return session.ErrNoToken
	}
	token, err := c.Store.Load(login)
	if err != nil {
		return err
	}
	c.Session.Start(login, records.TokenResponse{RefreshToken: token})
	if err := c.RefreshSession(ctx); err != nil {
		c.Session.Clear()
		return err
	}
	return nil
}

// RefreshSession trades the refresh token for a new access token.
func (c *Client) RefreshSession(ctx context.Context) error {
	token := c.Session.RefreshToken()
	if token == "" {
		return session.ErrNotAuthenticated
	}
	form := url.Values{}
	form.Set(config.FormRefreshToken, token)

	var tr records.TokenResponse
	if err := c.call(ctx, func() (request, error) {
		return formRequest(config.PathRefresh, form), nil
	}, &tr); err != nil {
		return err
	}

	c.Session.Refresh(tr)
	if c.Store != nil {
		c.Store.Persist(c.Session)
	}
	slog.Debug(config.MsgTokenRefresh,
		config.LogKeyComponent, config.CompSession,
		config.LogKeyUserID, c.Session.UserID(),
	)
	return nil
}

// Logout clears the session and forgets the stored refresh token.
func (c *Client) Logout() error {
	login := c.Session.Login()
	c.Session.Clear()
	if c.Store == nil || login == "" {
		return nil
	}
	return c.Store.Delete(login)
}

// CurrentUser loads and caches the signed-in user's record.
func (c *Client) CurrentUser(ctx context.Context) (records.User, error) {
	if u, ok := c.Session.Profile(); ok {
		return u, nil
	}
	u, err := c.GetUser(ctx, c.Session.UserID())
	if err != nil {
		return records.User{}, err
	}
	c.Session.SetProfile(u)
	return u, nil
}
