package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reliefassist/internal/config"
	"reliefassist/internal/middleware"
	"reliefassist/internal/models"
)

type donorRow struct {
	DonorID   uint    `json:"donor_id"`
	Donor     string  `json:"donor"`
	Phone     string  `json:"phone"`
	Gifts     int64   `json:"gifts"`
	CashTotal float64 `json:"cash_total"`
}

// ListDonors lists the roster with per-donor gift counts and cash totals.
func ListDonors(c *gin.Context) {
	var rows []donorRow
	err := config.DB.Table("donors AS d").
		Select("d.id AS donor_id, (d.first_name || ' ' || d.last_name) AS donor, d.phone, COUNT(n.id) AS gifts, COALESCE(SUM(n.amount),0) AS cash_total").
		Joins("LEFT JOIN donations n ON n.donor_id = d.id AND n.deleted_at IS NULL").
		Where("d.deleted_at IS NULL").
		Group("d.id, d.first_name, d.last_name, d.phone").
		Order("donor").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch donors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

type donationRow struct {
	DonationID   uint      `json:"donation_id"`
	DonationType string    `json:"donation_type"`
	Amount       float64   `json:"amount"`
	DonationDate time.Time `json:"donation_date"`
	UsedCash     float64   `json:"used_cash"`
	AllocatedQty int64     `json:"allocated_qty"`
}

func donationsForDonor(donorID uint) ([]donationRow, error) {
	rows := []donationRow{}
	err := config.DB.Table("donations AS n").
		Select("n.id AS donation_id, n.donation_type, n.amount, n.donation_date, COALESCE(SUM(da.amount_used),0) AS used_cash, COALESCE(SUM(da.quantity),0) AS allocated_qty").
		Joins("LEFT JOIN donation_allocations da ON da.donation_id = n.id AND da.deleted_at IS NULL").
		Where("n.donor_id = ? AND n.deleted_at IS NULL", donorID).
		Group("n.id, n.donation_type, n.amount, n.donation_date").
		Scan(&rows).Error
	return rows, err
}

// GetDonor returns one donor and their donations with allocation sums.
func GetDonor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var donor models.Donor
	if err := config.DB.First(&donor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donor not found"})
		return
	}

	rows, err := donationsForDonor(donor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch donations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"donor": donor, "donations": rows})
}

// MyDonations lists the logged-in donor's donations and how far each one has
// been allocated. A donor account without a roster profile gets an empty
// list.
func MyDonations(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no principal"})
		return
	}

	var donor models.Donor
	err := config.DB.Where("user_id = ?", userID).First(&donor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"data": []donationRow{}})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	rows, err := donationsForDonor(donor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch donations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
