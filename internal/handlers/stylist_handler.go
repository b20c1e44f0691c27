package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
	"github.com/StyleHubServices/salon-scheduler/internal/portrait"
)

type StylistHandler struct {
	db       *gorm.DB
	uploader *portrait.Uploader
}

func NewStylistHandler(db *gorm.DB, uploader *portrait.Uploader) *StylistHandler {
	return &StylistHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreateStylistRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
}

type UpdateStylistRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *StylistHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Stylist{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ?", like, like)
	}

	var stylists []models.Stylist
	if err := q.
		Order("id ASC").
		Find(&stylists).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_stylists"})
		return
	}

	c.JSON(http.StatusOK, stylists)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	stylist := models.Stylist{
		Name:      req.Name,
		Specialty: req.Specialty,
		Active:    true,
	}

	if err := h.db.Create(&stylist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_stylist"})
		return
	}

	c.JSON(http.StatusCreated, stylist)
}

// Desactivar un estilista no cancela sus citas existentes.
func (h *StylistHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var stylist models.Stylist
	if err := h.db.First(&stylist, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "stylist_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_stylist"})
		return
	}

	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		stylist.Name = *req.Name
	}
	if req.Specialty != nil {
		stylist.Specialty = *req.Specialty
	}
	if req.Active != nil {
		stylist.Active = *req.Active
	}

	if err := h.db.Save(&stylist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_stylist"})
		return
	}

	c.JSON(http.StatusOK, stylist)
}

// --------- Portrait upload ---------

func (h *StylistHandler) UploadPortrait(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "portrait_storage_disabled", "Almacenamiento de imágenes no configurado.")
		return
	}

	id := c.Param("id")

	var stylist models.Stylist
	if err := h.db.First(&stylist, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Estilista no encontrado.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Falta el fichero de imagen.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "No se pudo leer la imagen.")
		return
	}
	defer file.Close()

	data, err := portrait.Process(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "La imagen no es válida.")
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_portrait", "Error al subir el retrato.")
		return
	}

	stylist.PortraitURL = url
	if err := h.db.Save(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Error al guardar el estilista.")
		return
	}

	c.JSON(http.StatusOK, stylist)
}
