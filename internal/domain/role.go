package domain

// Role роль пользователя, выполняющего операцию
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleInstructor   Role = "instructor"
	RoleReceptionist Role = "receptionist"
	RoleStudent      Role = "student"
)

// IsPrivileged true для ролей персонала студии
// Заявки таких ролей одобряются сразу, и только они рассматривают чужие заявки
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleReceptionist:
		return true
	default:
		return false
	}
}

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	return r.IsPrivileged() || r == RoleStudent
}
