package dto

// LoginRequest authenticates a staff member and mints a session token.
type LoginRequest struct {
	StaffID  string `json:"staffId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and the staff projection the UI
// displays.
type LoginResponse struct {
	Token       string `json:"token"`
	StaffID     string `json:"staffId"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}
