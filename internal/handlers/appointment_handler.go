package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httpresp"
	ucAppointment "github.com/Jeffry-N/Beiruti-Fade/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.Book
	updateStatus *ucAppointment.UpdateStatus
	reschedule   *ucAppointment.Reschedule
	list         *ucAppointment.ListAppointments
	get          *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	book *ucAppointment.Book,
	updateStatus *ucAppointment.UpdateStatus,
	reschedule *ucAppointment.Reschedule,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		list:         list,
		get:          get,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	CustomerID uint   `json:"customerId" binding:"required"`
	BarberID   uint   `json:"barberId" binding:"required"`
	ServiceID  uint   `json:"serviceId" binding:"required"`
	Date       string `json:"appointmentDate" binding:"required"`
	Time       string `json:"appointmentTime" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"appointmentDate" binding:"required"`
	Time string `json:"appointmentTime" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is missing required fields.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		CustomerID: req.CustomerID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"appointmentId": ap.ID,
		"status":        ap.Status,
	})
}

// List filters by barberId or customerId; the barber filter wins when both
// are present.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if barberID, ok := queryID(c, "barberId"); ok {
		views, err := h.list.ForBarber(ctx, barberID)
		if err != nil {
			respondError(c, err)
			return
		}
		httpresp.List(c, views)
		return
	}

	if customerID, ok := queryID(c, "customerId"); ok {
		views, err := h.list.ForCustomer(ctx, customerID)
		if err != nil {
			respondError(c, err)
			return
		}
		httpresp.List(c, views)
		return
	}

	httperr.BadRequest(c, "missing_filter", "Provide a barberId or customerId filter.")
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, view)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is missing required fields.")
		return
	}

	status, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Appointment status updated",
		"status":  status,
	})
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is missing required fields.")
		return
	}

	if err := h.reschedule.Execute(c.Request.Context(), id, req.Date, req.Time); err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment rescheduled"})
}

func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
