package dto

// TokenResp carries the token pair returned by /login and /refresh.
type TokenResp struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResp is the public profile shape returned by /me.
// The password hash is never part of any response.
type UserResp struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
