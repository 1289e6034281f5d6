package models

// Roles carried in credentials and checked by the route guards.
const (
	RoleFarmer     = "farmer"
	RoleAgronomist = "agronomist"
	RoleAdmin      = "admin"
)

// User is a credential record. A farmer's User and Farmer documents share the
// same id; they are created together and never independently.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin,omitempty"`
	Status    string `json:"status"`
}
