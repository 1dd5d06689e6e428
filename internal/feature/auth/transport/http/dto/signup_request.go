package dto

// SignupReq represents the request body for the POST /users/new endpoint.
// It uses Gin's binding tags for validation (required, email format,
// password length and confirmation, gender enum). Password1 mirrors the
// field name the web client submits for the confirmation input.
type SignupReq struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Password1 string `json:"password1" binding:"required,eqfield=Password"`
	Gender    string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
}

// ResetPasswordReq represents the request body for the password reset stub.
type ResetPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}
