package request

import "atelie/internal/usecase"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) ToInput() usecase.SignupInput {
	return usecase.SignupInput{Name: r.Name, Email: r.Email, Password: r.Password}
}
