package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefassist/internal/config"
	"reliefassist/internal/models"
)

func TestAdminStats(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createUser(t, models.RoleAdmin)
	_, managerToken := createUser(t, models.RoleManager)
	createUser(t, models.RoleVolunteer)

	seedDisaster(t, "Flood", time.Now())
	seedDisaster(t, "Quake", time.Now())
	seedVolunteer(t, "Roster")

	// Not even a manager may read the admin panel.
	w := doJSON(t, r, http.MethodGet, "/admin", managerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decodeBody(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["disasters"])
	assert.EqualValues(t, 1, stats["volunteers"])
	assert.EqualValues(t, 3, stats["users"])
	assert.EqualValues(t, 1, stats["admin_users"])
	assert.EqualValues(t, 1, stats["manager_users"])
	assert.EqualValues(t, 1, stats["volunteer_users"])
}

func TestListUsersOrderedByEmail(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createUser(t, models.RoleAdmin)
	createUser(t, models.RoleDonor)
	createUser(t, models.RoleManager)

	w := doJSON(t, r, http.MethodGet, "/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rows, 3)
	var emails []string
	for _, row := range rows {
		emails = append(emails, row.(map[string]interface{})["email"].(string))
	}
	assert.IsIncreasing(t, emails)
}

func TestChangeUserRole(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createUser(t, models.RoleAdmin)
	target, targetToken := createUser(t, models.RoleVolunteer)

	// Unknown roles are rejected at the boundary.
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/user/%d/role", target.ID), adminToken, map[string]interface{}{
		"new_role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/user/%d/role", target.ID), adminToken, map[string]interface{}{
		"new_role": "manager",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, config.DB.First(&updated, target.ID).Error)
	assert.Equal(t, models.RoleManager, updated.Role)

	// The principal is re-read per request, so the promotion is live without
	// a new login.
	w = doJSON(t, r, http.MethodGet, "/tasks", targetToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRemoveUserDeniedForNonAdmin(t *testing.T) {
	r := setupRouter(t)
	victim, _ := createUser(t, models.RoleDonor)

	for _, role := range []string{models.RoleVolunteer, models.RoleManager} {
		_, token := createUser(t, role)
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/user/%d/remove", victim.ID), token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, "role %q must not remove users", role)
	}

	// The denied requests must not have touched the row.
	var count int64
	require.NoError(t, config.DB.Model(&models.User{}).Where("id = ?", victim.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRemoveUser(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createUser(t, models.RoleAdmin)
	target, targetToken := createUser(t, models.RoleDonor)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/user/%d/remove", target.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.User{}).Where("id = ?", target.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// The removed user's session no longer resolves.
	w = doJSON(t, r, http.MethodGet, "/my-donations", targetToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/notanumber/remove", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
