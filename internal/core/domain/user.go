package domain

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User is an operator of the HTTP shell. Admins may hire and record hours;
// viewers may only read employees and reports.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// ValidRole reports whether role is one the HTTP shell grants access to.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleViewer
}
