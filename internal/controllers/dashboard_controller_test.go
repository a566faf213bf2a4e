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

func TestDashboardShowsLatestTenDisasters(t *testing.T) {
	r := setupRouter(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedDisaster(t, fmt.Sprintf("disaster-%02d", i), base.AddDate(0, 0, i))
	}

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decodeBody(t, w)["disasters"].([]interface{})
	require.Len(t, rows, 10)
	assert.Equal(t, "disaster-11", rows[0].(map[string]interface{})["name"])
	assert.Equal(t, "disaster-02", rows[9].(map[string]interface{})["name"])
}

func TestInventoryListJoinsCenterAndResource(t *testing.T) {
	r := setupRouter(t)

	center := models.ReliefCenter{Name: "North Camp", Capacity: 500, CurrentLoad: 120}
	require.NoError(t, config.DB.Create(&center).Error)
	resource := models.Resource{ResourceType: "water"}
	require.NoError(t, config.DB.Create(&resource).Error)
	require.NoError(t, config.DB.Create(&models.CenterResource{
		CenterID: center.ID, ResourceID: resource.ID, QuantityOnHand: 40,
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/resources", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "North Camp", row["center"])
	assert.Equal(t, "water", row["resource_type"])
	assert.EqualValues(t, 40, row["quantity_on_hand"])
	assert.EqualValues(t, 500, row["capacity"])
}

func TestPublicRoutesNeedNoSession(t *testing.T) {
	r := setupRouter(t)
	for _, path := range []string{"/", "/disasters", "/resources"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}
