package dto

type CreateUserInput struct {
	Name       string
	Email      string
	Password   string // Plaintext, hashed before it reaches the repository
	UserTypeID *int64
}

type UpdateUserInput struct {
	ID         int64
	Name       string
	Email      string
	Password   string
	UserTypeID *int64
}
