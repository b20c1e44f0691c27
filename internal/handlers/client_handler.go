package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
	"github.com/StyleHubServices/salon-scheduler/internal/validators"
	"github.com/StyleHubServices/salon-scheduler/internal/vip"
)

type ClientHandler struct {
	db  *gorm.DB
	vip *vip.Service
}

func NewClientHandler(db *gorm.DB, vip *vip.Service) *ClientHandler {
	return &ClientHandler{db: db, vip: vip}
}

// --------- Requests / Responses ---------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Notes *string `json:"notes,omitempty"`
}

// ClientWithStats añade al cliente sus campos derivados: citas
// realizadas y condición de VIP.
type ClientWithStats struct {
	models.Client
	vip.Stats
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
		return
	}

	out := make([]ClientWithStats, 0, len(clients))
	for _, client := range clients {
		stats, err := h.vip.Stats(c.Request.Context(), client.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_compute_stats"})
			return
		}
		out = append(out, ClientWithStats{Client: client, Stats: stats})
	}

	c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	stats, err := h.vip.Stats(c.Request.Context(), client.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_compute_stats"})
		return
	}

	c.JSON(http.StatusOK, ClientWithStats{Client: client, Stats: stats})
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "El dominio del correo no parece válido.",
		})
		return
	}

	client := models.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: email,
		Notes: req.Notes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_client"})
		return
	}

	c.JSON(http.StatusOK, client)
}
