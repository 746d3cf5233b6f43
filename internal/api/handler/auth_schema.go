package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type signupRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Username        string `json:"username"         validate:"required"`
	Phone           string `json:"phone"            validate:"required"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role"             validate:"required,oneof=student owner admin"`
}

type signupResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
