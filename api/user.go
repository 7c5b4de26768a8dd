package api

import (
	"context"
)

// User is the account payload returned by the user endpoints.
type User struct {
	ID               string   `json:"_id"`
	Avatar           string   `json:"avatar"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	Role             string   `json:"role"`
	PurchasedCourses []string `json:"purchasedCourses"`
	Token            string   `json:"token,omitempty"`
}

// CanPublish reports whether the account may create courses.
func (u *User) CanPublish() bool {
	return u.Role == "both"
}

// HasPurchased reports whether the account owns the course.
func (u *User) HasPurchased(courseID string) bool {
	for _, id := range u.PurchasedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Login exchanges credentials for a session. The returned user carries the
// bearer token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	var user User
	if err := c.post(ctx, "/user/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account and logs it in.
func (c *Client) Register(ctx context.Context, email, username, password string) (*User, error) {
	body := map[string]string{"username": username, "email": email, "password": password}

	var user User
	if err := c.post(ctx, "/user/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the session token on the server.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/user/logout", map[string]string{"authToken": token}, nil)
}

// Me returns the account behind the current session.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
