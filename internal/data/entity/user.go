package entity

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleUser       UserRole = "USER"
	RoleStoreOwner UserRole = "STORE_OWNER"
)

// User carries the password hash; it never reaches a client directly,
// the response views omit it by construction.
type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Address      string   `db:"address"`
	Role         UserRole `db:"role"`
}
