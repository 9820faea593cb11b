package auth

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest: в login принимается email либо имя пользователя
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
