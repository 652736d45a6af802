package accounts

// UserDTO is the API view of an account. The password hash never leaves
// the package.
type UserDTO struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// FromUser maps a stored record to its API view.
func FromUser(u *User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterInput captures a self-service registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    string
}

// UpdateUserInput captures the admin-editable account fields. A nil
// Password leaves the stored hash unchanged.
type UpdateUserInput struct {
	Username string
	Email    string
	Phone    string
	Password *string
}
