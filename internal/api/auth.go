package api

import (
	"context"
	"net/http"

	"github.com/community-pulse/cli/types"
)

// Signup creates a new account. No session is established; callers that
// want one chain Login afterwards, as the signup form does.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (types.User, error) {
	var user types.User
	if err := c.do(ctx, http.MethodPost, "/signup/", "", req, &user, msgSignupFailed); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Login exchanges credentials for a token, fetches the profile with the
// fresh token, and persists both into the session store in one write.
// Nothing is persisted when any step fails.
func (c *Client) Login(ctx context.Context, req LoginRequest) error {
	var auth AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login/", "", req, &auth, msgLoginFailed); err != nil {
		return err
	}

	user, err := c.currentUser(ctx, auth.AccessToken)
	if err != nil {
		return err
	}

	if err := c.sessions.Set(ctx, auth.AccessToken, &user); err != nil {
		return &Error{Message: msgLoginFailed}
	}
	return nil
}

// CurrentUser fetches the profile for the stored token. Views use it to
// rehydrate a session after a restart.
func (c *Client) CurrentUser(ctx context.Context) (types.User, error) {
	return c.currentUser(ctx, c.bearer(ctx))
}

func (c *Client) currentUser(ctx context.Context, token string) (types.User, error) {
	var user types.User
	if err := c.do(ctx, http.MethodGet, "/me/", token, nil, &user, msgCurrentUserFailed); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Logout clears the session store. There is no server round-trip; the
// token simply stops being presented.
func (c *Client) Logout(ctx context.Context) error {
	return c.sessions.Clear(ctx)
}

type SignupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
