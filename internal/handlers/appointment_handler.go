package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
	"github.com/StyleHubServices/salon-scheduler/internal/middleware"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
	"github.com/StyleHubServices/salon-scheduler/internal/timezone"
	ucAppointment "github.com/StyleHubServices/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo domain.Repository

	createUC      *ucAppointment.CreateAppointment
	updateUC      *ucAppointment.UpdateAppointment
	deleteUC      *ucAppointment.DeleteAppointment
	workflowUC    *ucAppointment.Workflow
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth
	availUC       *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	workflowUC *ucAppointment.Workflow,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	availUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:          repo,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		workflowUC:    workflowUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		availUC:       availUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentLineRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`

	// Sin precio explícito se copia el del catálogo
	Price *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
}

type CreateAppointmentRequest struct {
	ClientID  uint `json:"client_id" binding:"required"`
	StylistID uint `json:"stylist_id" binding:"required"`

	Date string `json:"date"`
	Time string `json:"time"`

	Notes string                   `json:"notes"`
	Lines []AppointmentLineRequest `json:"lines"`
}

type UpdateAppointmentRequest struct {
	ClientID  *uint `json:"client_id,omitempty"`
	StylistID *uint `json:"stylist_id,omitempty"`

	Date *string `json:"date,omitempty"`
	Time *string `json:"time,omitempty"`

	Notes *string                   `json:"notes,omitempty"`
	Lines *[]AppointmentLineRequest `json:"lines,omitempty"`
}

type BulkActionRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

func toLineInputs(reqs []AppointmentLineRequest) []ucAppointment.LineInput {
	lines := make([]ucAppointment.LineInput, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, ucAppointment.LineInput{
			ServiceID: r.ServiceID,
			Price:     r.Price,
		})
	}
	return lines
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	switch be.Code {
	case "appointment_not_found", "client_not_found",
		"stylist_not_found", "service_not_found":
		httperr.NotFound(c, be.Code, be.Error())
	default:
		httperr.BadRequest(c, be.Code, be.Error())
	}
}

// ======================================================
// CREATE / UPDATE / GET / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), userID, ucAppointment.CreateAppointmentInput{
		ClientID:  req.ClientID,
		StylistID: req.StylistID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		Lines:     toLineInputs(req.Lines),
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		ClientID:  req.ClientID,
		StylistID: req.StylistID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	}
	if req.Lines != nil {
		lines := toLineInputs(*req.Lines)
		in.Lines = &lines
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), userID, uint(id), in)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	stylistID := parseOptionalID(c.Query("stylist_id"))

	out, err := h.listByDateUC.Execute(c.Request.Context(), stylistID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Año y mes son obligatorios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	stylistID := parseOptionalID(c.Query("stylist_id"))

	out, err := h.listByMonthUC.Execute(c.Request.Context(), stylistID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	stylistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	serviceID := parseOptionalID(c.Query("service_id"))
	if serviceID == 0 {
		httperr.BadRequest(c, "missing_service", "Servicio obligatorio.")
		return
	}

	date, err := timezone.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		StylistID: uint(stylistID),
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ======================================================
// WORKFLOW
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context)      { h.applySingle(c, h.workflowUC.Confirm) }
func (h *AppointmentHandler) Complete(c *gin.Context)     { h.applySingle(c, h.workflowUC.Complete) }
func (h *AppointmentHandler) Cancel(c *gin.Context)       { h.applySingle(c, h.workflowUC.Cancel) }
func (h *AppointmentHandler) ResetToDraft(c *gin.Context) { h.applySingle(c, h.workflowUC.ResetToDraft) }

func (h *AppointmentHandler) BulkConfirm(c *gin.Context)  { h.applyBulk(c, h.workflowUC.Confirm) }
func (h *AppointmentHandler) BulkComplete(c *gin.Context) { h.applyBulk(c, h.workflowUC.Complete) }
func (h *AppointmentHandler) BulkCancel(c *gin.Context)   { h.applyBulk(c, h.workflowUC.Cancel) }
func (h *AppointmentHandler) BulkResetToDraft(c *gin.Context) {
	h.applyBulk(c, h.workflowUC.ResetToDraft)
}

type workflowFn func(ctx context.Context, userID uint, ids []uint) ([]models.Appointment, error)

func (h *AppointmentHandler) applySingle(c *gin.Context, fn workflowFn) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	aps, err := fn(c.Request.Context(), userID, []uint{uint(id)})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	if len(aps) == 0 {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	c.JSON(http.StatusOK, aps[0])
}

func (h *AppointmentHandler) applyBulk(c *gin.Context, fn workflowFn) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	aps, err := fn(c.Request.Context(), userID, req.IDs)
	if err != nil {
		// Las citas ya procesadas se devuelven junto al error
		var be httperr.BusinessError
		if errors.As(err, &be) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error_code": be.Code,
				"message":    be.Error(),
				"processed":  aps,
			})
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": aps})
}

func parseOptionalID(raw string) uint {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
