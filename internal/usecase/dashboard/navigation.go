package dashboard

import "github.com/auditrecrut/backend/internal/domain"

// NavEntry is one sidebar link with its role allow-list. An entry is
// visible iff the current role is a member of Roles. This is advisory
// navigation only; each route enforces its own access.
type NavEntry struct {
	Name  string        `json:"name"`
	Path  string        `json:"path"`
	Roles []domain.Role `json:"-"`
}

var navEntries = []NavEntry{
	{
		Name: "Tableau de bord",
		Path: "/dashboard",
		Roles: []domain.Role{
			domain.RoleCandidateGraduate, domain.RoleCandidateProfessional,
			domain.RoleRecruiter, domain.RoleAdmin,
		},
	},
	{
		Name:  "Mon Profil",
		Path:  "/dashboard/profile",
		Roles: []domain.Role{domain.RoleCandidateGraduate, domain.RoleCandidateProfessional},
	},
	{
		Name:  "Mes Candidatures",
		Path:  "/dashboard/applications",
		Roles: []domain.Role{domain.RoleCandidateGraduate, domain.RoleCandidateProfessional},
	},
	{
		Name:  "Missions",
		Path:  "/dashboard/missions",
		Roles: []domain.Role{domain.RoleRecruiter},
	},
	{
		Name:  "Candidats",
		Path:  "/dashboard/candidates",
		Roles: []domain.Role{domain.RoleRecruiter},
	},
	{
		Name:  "Administration",
		Path:  "/dashboard/admin",
		Roles: []domain.Role{domain.RoleAdmin},
	},
}

// Navigation returns the entries the role is allowed to see, in menu order.
func Navigation(role domain.Role) []NavEntry {
	var out []NavEntry
	for _, entry := range navEntries {
		for _, r := range entry.Roles {
			if r == role {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}
