package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/handler/dto"
	"github.com/wesamghrayeb/crm-app/internal/middleware"
	"github.com/wesamghrayeb/crm-app/internal/service"
)

type ClientSvc interface {
	Register(ctx context.Context, input domain.RegisterClientInput) (*domain.Client, error)
	Login(ctx context.Context, email, password string) (*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.Client, error)
	GetForAdmin(ctx context.Context, id, adminID string) (*domain.Client, error)
	Renew(ctx context.Context, id, adminID string, input domain.RenewMembershipInput) (*domain.Client, error)
	Delete(ctx context.Context, id, adminID string) error
}

type BookingSvc interface {
	Book(ctx context.Context, clientID, slotID string) error
	Cancel(ctx context.Context, clientID, slotID string) error
	AdminBook(ctx context.Context, adminID, clientID, slotID string) error
	ListClientSlots(ctx context.Context, clientID string) ([]*domain.Slot, error)
}

type SlotSvc interface {
	Create(ctx context.Context, adminID string, input domain.CreateSlotInput) (*domain.Slot, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.Slot, error)
	ListAvailable(ctx context.Context, adminID string) ([]*domain.Slot, error)
	UpdateCapacity(ctx context.Context, id, adminID string, maxClients int) (*domain.Slot, error)
	Delete(ctx context.Context, id, adminID string) error
	ListByClient(ctx context.Context, clientID string) ([]*domain.Slot, error)
}

type ReportSvc interface {
	Usage(ctx context.Context, adminID string) ([]service.UsageRow, error)
	UsageCSV(ctx context.Context, adminID string) ([]byte, error)
	Overview(ctx context.Context, adminID string) (*service.Overview, error)
	RecentActivity(ctx context.Context, adminID string) ([]*domain.ActivityEntry, error)
}

type TokenIssuer interface {
	Issue(clientID string, role domain.Role) (string, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Handler struct {
	clientService  ClientSvc
	bookingService BookingSvc
	slotService    SlotSvc
	reportService  ReportSvc
	tokens         TokenIssuer
	mailer         Mailer
	adminEmail     string
}

func NewHandler(
	clientService ClientSvc,
	bookingService BookingSvc,
	slotService SlotSvc,
	reportService ReportSvc,
	tokens TokenIssuer,
	mailer Mailer,
	adminEmail string,
) *Handler {
	return &Handler{
		clientService:  clientService,
		bookingService: bookingService,
		slotService:    slotService,
		reportService:  reportService,
		tokens:         tokens,
		mailer:         mailer,
		adminEmail:     adminEmail,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterClientInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Password:         req.Password,
		AdminID:          req.AdminID,
		SubscriptionType: req.SubscriptionType,
		TotalSessions:    req.TotalSessions,
	}

	if req.StartDate != "" {
		start, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
			return
		}
		input.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
			return
		}
		input.EndDate = &end
	}

	client, err := h.clientService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	client, err := h.clientService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Issue(client.ID, client.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:  token,
		Client: dto.ToClientResponse(client),
	})
}

func (h *Handler) Me(c *ginext.Context) {
	client, err := h.clientService.GetByID(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// Client booking surface

func (h *Handler) ListAvailableSlots(c *ginext.Context) {
	client, err := h.clientService.GetByID(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	adminID := client.AdminID
	if client.Role == domain.RoleAdmin {
		adminID = client.ID
	}

	slots, err := h.slotService.ListAvailable(c.Request.Context(), adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(slots))
}

func (h *Handler) BookSlot(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	if err := h.bookingService.Book(c.Request.Context(), h.callerID(c), slotID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "booked successfully"})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), h.callerID(c), slotID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "booking canceled"})
}

func (h *Handler) MyBookings(c *ginext.Context) {
	slots, err := h.bookingService.ListClientSlots(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(slots))
}

func (h *Handler) Notify(c *ginext.Context) {
	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.mailer.Send(c.Request.Context(), h.adminEmail, req.Subject, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to send email"})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "mail sent successfully"})
}

// Admin: slots

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.Create(c.Request.Context(), h.callerID(c), domain.CreateSlotInput{
		Date:       req.Date,
		Time:       req.Time,
		MaxClients: req.MaxClients,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) ListAdminSlots(c *ginext.Context) {
	slots, err := h.slotService.ListByAdmin(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(slots))
}

func (h *Handler) UpdateSlot(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.UpdateCapacity(c.Request.Context(), slotID, h.callerID(c), req.MaxClients)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) DeleteSlot(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	if err := h.slotService.Delete(c.Request.Context(), slotID, h.callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "slot deleted"})
}

func (h *Handler) AddClientToSlot(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.AdminBook(c.Request.Context(), h.callerID(c), req.ClientID, slotID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "client added to slot"})
}

// Admin: clients

func (h *Handler) ListClients(c *ginext.Context) {
	clients, err := h.clientService.ListByAdmin(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		resp = append(resp, dto.ToClientResponse(cl))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetClient(c *ginext.Context) {
	clientID := c.Param("id")
	if _, err := uuid.Parse(clientID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid client id"})
		return
	}

	client, err := h.clientService.GetForAdmin(c.Request.Context(), clientID, h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) RenewClient(c *ginext.Context) {
	clientID := c.Param("id")
	if _, err := uuid.Parse(clientID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid client id"})
		return
	}

	var req dto.RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RenewMembershipInput{
		SubscriptionType: req.SubscriptionType,
		TotalSessions:    req.TotalSessions,
		StartDate:        time.Now().UTC(),
	}
	if req.StartDate != "" {
		start, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
			return
		}
		input.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
			return
		}
		input.EndDate = &end
	}

	client, err := h.clientService.Renew(c.Request.Context(), clientID, h.callerID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) DeleteClient(c *ginext.Context) {
	clientID := c.Param("id")
	if _, err := uuid.Parse(clientID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid client id"})
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), clientID, h.callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "client deleted"})
}

func (h *Handler) ClientSlots(c *ginext.Context) {
	clientID := c.Param("id")
	if _, err := uuid.Parse(clientID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid client id"})
		return
	}

	if _, err := h.clientService.GetForAdmin(c.Request.Context(), clientID, h.callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	slots, err := h.slotService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(slots))
}

// Admin: reports

func (h *Handler) UsageReport(c *ginext.Context) {
	report, err := h.reportService.Usage(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) UsageReportCSV(c *ginext.Context) {
	data, err := h.reportService.UsageCSV(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=report.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) Overview(c *ginext.Context) {
	overview, err := h.reportService.Overview(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *Handler) RecentActivity(c *ginext.Context) {
	entries, err := h.reportService.RecentActivity(c.Request.Context(), h.callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ActivityResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToActivityResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) callerID(c *ginext.Context) string {
	return c.GetString(middleware.ClientIDKey)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAccessDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrQuotaExhausted),
		errors.Is(err, domain.ErrDateConflict),
		errors.Is(err, domain.ErrNotBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTransient):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
