package domain

import "fmt"

// Role is the closed set of account roles. Role is immutable after signup.
type Role string

const (
	RoleCandidateGraduate     Role = "candidate_graduate"
	RoleCandidateProfessional Role = "candidate_professional"
	RoleRecruiter             Role = "recruiter"
	RoleAdmin                 Role = "admin"
)

// ParseRole validates a raw role string coming from the outside.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCandidateGraduate, RoleCandidateProfessional, RoleRecruiter, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// IsCandidate reports whether the role is one of the two candidate variants.
func (r Role) IsCandidate() bool {
	return r == RoleCandidateGraduate || r == RoleCandidateProfessional
}

// CanManageMissions reports whether the role may access recruiter surfaces
// (missions and candidate listings).
func (r Role) CanManageMissions() bool {
	return r == RoleRecruiter || r == RoleAdmin
}
