package request

// CreateUserRequest is the admin variant of signup: any role is allowed
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,user_password"`
	Address  string `json:"address,omitempty" validate:"omitempty,max=400"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER STORE_OWNER"`
}
