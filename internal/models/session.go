package models

// Session is the server-side session state kept in Redis, keyed by an
// opaque session id carried inside the signed cookie token.
type Session struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
