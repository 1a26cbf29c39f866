package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		action string
		want   bool
	}{
		{"admin manages companies", RoleAdmin, ActionManageCompanies, true},
		{"admin manages modules", RoleAdmin, ActionManageModules, true},
		{"admin takes training", RoleAdmin, ActionTakeTraining, true},
		{"user takes training", RoleUser, ActionTakeTraining, true},
		{"user views own progress", RoleUser, ActionViewOwnProgress, true},
		{"user downloads own certificate", RoleUser, ActionDownloadOwnCert, true},
		{"user cannot manage companies", RoleUser, ActionManageCompanies, false},
		{"user cannot manage groups", RoleUser, ActionManageGroups, false},
		{"user cannot manage users", RoleUser, ActionManageUsers, false},
		{"user cannot view reports", RoleUser, ActionViewReports, false},
		{"unknown role has no capabilities", "SUPERVISOR", ActionTakeTraining, false},
		{"unknown action is denied", RoleAdmin, "drop-database", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.role, tt.action))
		})
	}
}
