package dashboard

import (
	"testing"

	"github.com/auditrecrut/backend/internal/domain"
)

func TestNavigation(t *testing.T) {
	tests := []struct {
		role      domain.Role
		wantPaths []string
	}{
		{
			role:      domain.RoleCandidateGraduate,
			wantPaths: []string{"/dashboard", "/dashboard/profile", "/dashboard/applications"},
		},
		{
			role:      domain.RoleCandidateProfessional,
			wantPaths: []string{"/dashboard", "/dashboard/profile", "/dashboard/applications"},
		},
		{
			role:      domain.RoleRecruiter,
			wantPaths: []string{"/dashboard", "/dashboard/missions", "/dashboard/candidates"},
		},
		{
			role:      domain.RoleAdmin,
			wantPaths: []string{"/dashboard", "/dashboard/admin"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			entries := Navigation(tt.role)
			if len(entries) != len(tt.wantPaths) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.wantPaths))
			}
			for i, path := range tt.wantPaths {
				if entries[i].Path != path {
					t.Errorf("entry %d: path %s, want %s", i, entries[i].Path, path)
				}
			}
		})
	}
}

func TestNavigationUnknownRoleSeesNothing(t *testing.T) {
	if entries := Navigation("intern"); len(entries) != 0 {
		t.Errorf("unknown role sees %d entries, want 0", len(entries))
	}
}
