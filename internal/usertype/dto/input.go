package dto

type UserTypeInput struct {
	Name string
}
