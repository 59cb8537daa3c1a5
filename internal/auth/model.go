package auth

// Staff roles. ADMIN manages the menu, categories and tables; STAFF
// builds and places orders.
const (
	RoleStaff = "STAFF"
	RoleAdmin = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
