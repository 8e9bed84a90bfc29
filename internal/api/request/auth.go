package request

// LoginRequest is the access-gate login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
