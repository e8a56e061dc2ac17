package handlers

import (
	"errors"
	"net/http"

	"docportal/models"
	"docportal/services/doctor"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-managed doctor roster.
type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(service doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: service}
}

// GetDoctors handles GET /doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Service.GetAll()
	if err != nil {
		utils.GetLogger().Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", err.Error())
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

type addDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty" binding:"required"`
}

// AddDoctor handles POST /doctors.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var req addDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Add(&models.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
	})
	if err != nil {
		utils.GetLogger().Error("failed to add doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteDoctor handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Remove(id); err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		utils.GetLogger().Error("failed to delete doctor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
