package model

type UserType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// User never serialises its password hash.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	UserTypeID   *int64 `db:"user_type_id" json:"user_type_id"` // Nullable
}
