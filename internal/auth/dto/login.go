package dto

type LoginInput struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}
