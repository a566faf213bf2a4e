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

func seedDonorWithGifts(t *testing.T, userID *uint) models.Donor {
	t.Helper()
	donor := models.Donor{UserID: userID, FirstName: "Grace", LastName: "Otieno", Phone: "0711000000"}
	require.NoError(t, config.DB.Create(&donor).Error)

	gift := models.Donation{DonorID: donor.ID, DonationType: "cash", Amount: 1000, DonationDate: time.Now()}
	require.NoError(t, config.DB.Create(&gift).Error)
	require.NoError(t, config.DB.Create(&models.DonationAllocation{DonationID: gift.ID, AmountUsed: 250}).Error)
	require.NoError(t, config.DB.Create(&models.DonationAllocation{DonationID: gift.ID, AmountUsed: 150}).Error)

	inKind := models.Donation{DonorID: donor.ID, DonationType: "blankets", Amount: 0, DonationDate: time.Now()}
	require.NoError(t, config.DB.Create(&inKind).Error)
	return donor
}

func TestDonorRosterAggregates(t *testing.T) {
	r := setupRouter(t)
	_, managerToken := createUser(t, models.RoleManager)
	seedDonorWithGifts(t, nil)

	w := doJSON(t, r, http.MethodGet, "/donors", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Grace Otieno", row["donor"])
	assert.EqualValues(t, 2, row["gifts"])
	assert.EqualValues(t, 1000, row["cash_total"])
}

func TestDonorDetailAndMyDonations(t *testing.T) {
	r := setupRouter(t)
	_, managerToken := createUser(t, models.RoleManager)
	donorUser, donorToken := createUser(t, models.RoleDonor)
	donor := seedDonorWithGifts(t, &donorUser.ID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/donor/%d", donor.ID), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)
	donations := detail["donations"].([]interface{})
	require.Len(t, donations, 2)

	w = doJSON(t, r, http.MethodGet, "/my-donations", donorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rows, 2)

	var cash map[string]interface{}
	for _, rowIfc := range rows {
		row := rowIfc.(map[string]interface{})
		if row["donation_type"] == "cash" {
			cash = row
		}
	}
	require.NotNil(t, cash)
	assert.EqualValues(t, 400, cash["used_cash"])

	w = doJSON(t, r, http.MethodGet, "/donor/99999", managerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyDonationsWithoutProfileIsEmpty(t *testing.T) {
	r := setupRouter(t)
	_, donorToken := createUser(t, models.RoleDonor)

	w := doJSON(t, r, http.MethodGet, "/my-donations", donorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"])
}
