package models

// SessionUser is the identity the API reports for the signed-in actor.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the authenticated actor context: the bearer token plus the
// user it belongs to. It is created at sign-in, persisted by the auth
// package and injected explicitly into everything that needs it.
type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
