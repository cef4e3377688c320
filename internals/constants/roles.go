package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleGrader  = "grader"
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyGradersCanAccess = "❌ Only grader or admin may access %s."
	ErrOnlyAdminsCanAccess  = "❌ Only admin may access %s."
)

func RoleErrorGrader(feature string) string {
	return fmt.Sprintf(ErrOnlyGradersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleGrader,
		RoleAdmin,
	}

	GraderAndAbove = []string{
		RoleGrader,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
