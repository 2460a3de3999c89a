package constants

import "fmt"

const (
	RoleStudent  = "student"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

// Template pesan error role
const (
	ErrOnlyStudentsCanAccess  = "Only students can %s."
	ErrOnlyEmployersCanAccess = "Only employers can %s."
	ErrOnlyAdminsCanAccess    = "Only admins can %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorEmployer(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Kelompok role
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleEmployer,
		RoleAdmin,
	}

	// role yang boleh dipilih saat registrasi sendiri
	RegistrableRoles = []string{
		RoleStudent,
		RoleEmployer,
	}

	EmployerAndAdmin = []string{
		RoleEmployer,
		RoleAdmin,
	}

	StudentOnly = []string{RoleStudent}

	EmployerOnly = []string{RoleEmployer}

	AdminOnly = []string{RoleAdmin}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
