package http

import (
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/setting"

	"github.com/labstack/echo/v4"
)

const (
	// internalErrorMessage is what the storefront shows when a checkout fails.
	internalErrorMessage = "Error interno del servidor"

	healthMessage = "Storefront API is running"
)

// Handlers groups the use cases the HTTP server dispatches to.
type Handlers struct {
	// Command handlers
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	SetSetting        commands.SetSettingCommandHandler

	// Query handlers
	ListOrders queries.ListOrdersQueryHandler
	GetSetting queries.GetSettingQueryHandler
	GetMenu    queries.GetMenuQueryHandler
}

// Server maps HTTP requests to application use cases.
type Server struct {
	handlers Handlers
	metrics  *Metrics
	log      *slog.Logger

	newOrderID func() kernel.UUID
}

func NewServer(handlers Handlers, metrics *Metrics, log *slog.Logger) *Server {
	return &Server{
		handlers:   handlers,
		metrics:    metrics,
		log:        log.With("component", "http"),
		newOrderID: kernel.NewUUID,
	}
}

// Register mounts every API route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.Health)

	api := e.Group("/api")
	api.GET("/menu", s.GetMenu)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/config/high-demand", s.GetHighDemand)
	api.POST("/config/high-demand", s.SetHighDemand)
}

// Health handles GET / - plain text liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, healthMessage)
}

// GetMenu handles GET /api/menu - returns the whole catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	catalog, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(ctx, "get menu", err)
	}

	return ctx.JSON(http.StatusOK, catalog)
}

// CreateOrder handles POST /api/orders - stores a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.checkoutFailed(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return s.checkoutFailed(ctx, err)
	}

	orderID := s.newOrderID()
	cmd, err := req.toCommand(orderID)
	if err != nil {
		return s.checkoutFailed(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.checkoutFailed(ctx, err)
	}

	s.metrics.OrderCreated(cmd.Payment().Method.String())
	s.logOrderCreated(ctx, cmd)

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Success: true,
		OrderID: orderID.String(),
	})
}

// ListOrders handles GET /api/orders - lists orders newest first.
// ?status=x returns only x; ?active=true hides completed and cancelled orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("active") == "true",
	)

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "list orders", err)
	}

	response := make([]OrderResponse, len(result))
	for i, o := range result {
		response[i] = orderResponseFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
// An id that matches no order answers 200 with a null body.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, "change order status", err)
	}
	if err := ctx.Validate(&req); err != nil {
		return s.fail(ctx, "change order status", err)
	}
	if _, err := order.ParseStatus(req.Status); err != nil {
		return s.fail(ctx, "change order status", err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusOK, nil)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return s.fail(ctx, "change order status", err)
	}

	updated, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "change order status", err)
	}
	if updated == nil {
		return ctx.JSON(http.StatusOK, nil)
	}

	s.metrics.StatusChanged(updated.Status().String())

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// GetHighDemand handles GET /api/config/high-demand.
func (s *Server) GetHighDemand(ctx echo.Context) error {
	query, err := queries.NewGetSettingQuery(setting.HighDemand)
	if err != nil {
		return s.fail(ctx, "get high demand", err)
	}

	result, err := s.handlers.GetSetting.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get high demand", err)
	}

	return ctx.JSON(http.StatusOK, HighDemandResponse{IsHighDemand: result.Value})
}

// SetHighDemand handles POST /api/config/high-demand - overwrites the flag.
func (s *Server) SetHighDemand(ctx echo.Context) error {
	var req SetHighDemandRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, "set high demand", err)
	}

	value, err := kernel.ParseScalarJSON(req.Enabled)
	if err != nil {
		return s.fail(ctx, "set high demand", err)
	}

	cmd, err := commands.NewSetSettingCommand(setting.HighDemand, value)
	if err != nil {
		return s.fail(ctx, "set high demand", err)
	}

	stored, err := s.handlers.SetSetting.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "set high demand", err)
	}

	s.log.InfoContext(ctx.Request().Context(), "high demand changed", "value", stored.Value().String())

	return ctx.JSON(http.StatusOK, SetHighDemandResponse{
		Success:      true,
		IsHighDemand: stored.Value(),
	})
}

// logOrderCreated logs the item subtotal next to the client total, plus the
// change due when the customer pays cash with a stated amount.
func (s *Server) logOrderCreated(ctx echo.Context, cmd commands.CreateOrderCommand) {
	var subtotal float64
	for _, item := range cmd.Items() {
		subtotal += item.Subtotal()
	}

	total := cmd.Charges().Total
	attrs := []any{
		"order_id", cmd.OrderID().String(),
		"payment_method", cmd.Payment().Method.String(),
		"items", len(cmd.Items()),
		"subtotal", subtotal,
		"total", total,
	}
	if change, ok := cmd.Payment().Change(total); ok {
		attrs = append(attrs, "change_due", change)
	}

	s.log.InfoContext(ctx.Request().Context(), "order created", attrs...)
}

func (s *Server) fail(ctx echo.Context, op string, err error) error {
	s.log.ErrorContext(ctx.Request().Context(), op+" failed", "error", err)
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func (s *Server) checkoutFailed(ctx echo.Context, err error) error {
	s.log.ErrorContext(ctx.Request().Context(), "create order failed", "error", err)
	return ctx.JSON(http.StatusInternalServerError, FailureResponse{
		Success: false,
		Message: internalErrorMessage,
	})
}
