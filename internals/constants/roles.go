package constants

import "strings"

type Role string

const (
	RoleSiswa Role = "siswa"
	RoleGuru  Role = "guru"
)

func (r Role) Valid() bool {
	return r == RoleSiswa || r == RoleGuru
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Allows true bila role termasuk salah satu allowed.
func Allows(have Role, allowed ...Role) bool {
	for _, r := range allowed {
		if have == r {
			return true
		}
	}
	return false
}

var (
	AllRoles  = []Role{RoleSiswa, RoleGuru}
	GuruOnly  = []Role{RoleGuru}
	SiswaOnly = []Role{RoleSiswa}
)
