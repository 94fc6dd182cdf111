// Package http exposes the shipping service over a REST API.
// The caller's identity is taken from the X-User-Login header; user
// provisioning happens upstream of this service.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// LoginHeader names the request header carrying the caller's login.
const LoginHeader = "X-User-Login"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	payOrderHandler     commands.PayOrderCommandHandler
	shipOrderHandler    commands.ShipOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	receiveOrderHandler commands.ReceiveOrderCommandHandler
	archiveOrderHandler commands.ArchiveOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	registerCardHandler commands.RegisterCardCommandHandler
	topUpCardHandler    commands.TopUpCardCommandHandler
	removeCardHandler   commands.RemoveCardCommandHandler

	// Query handlers
	getUserOrdersHandler   queries.GetUserOrdersQueryHandler
	getUserPaymentsHandler queries.GetUserPaymentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	receiveOrderHandler commands.ReceiveOrderCommandHandler,
	archiveOrderHandler commands.ArchiveOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	registerCardHandler commands.RegisterCardCommandHandler,
	topUpCardHandler commands.TopUpCardCommandHandler,
	removeCardHandler commands.RemoveCardCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getUserPaymentsHandler queries.GetUserPaymentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		payOrderHandler:        payOrderHandler,
		shipOrderHandler:       shipOrderHandler,
		deliverOrderHandler:    deliverOrderHandler,
		receiveOrderHandler:    receiveOrderHandler,
		archiveOrderHandler:    archiveOrderHandler,
		deleteOrderHandler:     deleteOrderHandler,
		registerCardHandler:    registerCardHandler,
		topUpCardHandler:       topUpCardHandler,
		removeCardHandler:      removeCardHandler,
		getUserOrdersHandler:   getUserOrdersHandler,
		getUserPaymentsHandler: getUserPaymentsHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/pay", s.PayOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/archive", s.ArchiveOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/cards", s.RegisterCard)
	api.POST("/cards/:id/top-up", s.TopUpCard)
	api.DELETE("/cards/:id", s.RemoveCard)

	api.GET("/payments", s.GetPayments)
}

// CreateOrder handles POST /api/v1/orders - registers a new shipment order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	login, err := requireLogin(ctx)
	if err != nil {
		return err
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		login,
		request.Description,
		request.Weight,
		request.OrderTypeID,
		request.CityFrom,
		request.CityTo,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
// An optional status query parameter narrows the listing to one status.
func (s *Server) GetOrders(ctx echo.Context) error {
	login, err := requireLogin(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserOrdersQuery(login, ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid listing filter: "+err.Error())
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, item := range orders {
		response[i] = toOrderResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PayOrder handles POST /api/v1/orders/:id/pay - settles an order from a card.
func (s *Server) PayOrder(ctx echo.Context) error {
	login, err := requireLogin(ctx)
	if err != nil {
		return err
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request PayOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPayOrderCommand(orderID, request.CardID, login)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order to
// the named status. Only the forward transitions SHIPPED, DELIVERED and
// RECEIVED can be requested; payment and archival have their own endpoints.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	if _, err := requireLogin(ctx); err != nil {
		return err
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AdvanceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	var handleErr error
	switch target {
	case order.Shipped:
		var cmd commands.ShipOrderCommand
		if cmd, err = commands.NewShipOrderCommand(orderID); err == nil {
			handleErr = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
		}
	case order.Delivered:
		var cmd commands.DeliverOrderCommand
		if cmd, err = commands.NewDeliverOrderCommand(orderID); err == nil {
			handleErr = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
		}
	case order.Received:
		var cmd commands.ReceiveOrderCommand
		if cmd, err = commands.NewReceiveOrderCommand(orderID); err == nil {
			handleErr = s.receiveOrderHandler.Handle(ctx.Request().Context(), cmd)
		}
	default:
		return badRequest(ctx, "Status cannot be requested directly: "+target.String())
	}

	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ArchiveOrder handles POST /api/v1/orders/:id/archive - archives a received order.
func (s *Server) ArchiveOrder(ctx echo.Context) error {
	if _, err := requireLogin(ctx); err != nil {
		return err
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewArchiveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.archiveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - deletes an unpaid order.
// Deleting an order that has been paid already is a no-op.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	if _, err := requireLogin(ctx); err != nil {
		return err
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterCard handles POST /api/v1/cards - registers a card for the caller.
// Re-registering a known card with matching details links it to the caller.
func (s *Server) RegisterCard(ctx echo.Context) error {
	login, err := requireLogin(ctx)
	if err != nil {
		return err
	}

	var request RegisterCardRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCardCommand(login, request.CardID, request.ExpMonth, request.ExpYear, request.Code)
	if err != nil {
		return badRequest(ctx, "Invalid card data: "+err.Error())
	}

	if handleErr := s.registerCardHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// TopUpCard handles POST /api/v1/cards/:id/top-up - credits a caller's card.
func (s *Server) TopUpCard(ctx echo.Context) error {
	login, err := requireLogin(ctx)
	if err != nil {
		return err
	}

	cardID, err := parseCardID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid card id")
	}

	var request TopUpCardRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTopUpCardCommand(login, cardID, kernel.MoneyFromCents(request.AmountInCents))
	if err != nil {
		return badRequest(ctx, "Invalid top-up data: "+err.Error())
	}

	if handleErr := s.topUpCardHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveCard handles DELETE /api/v1/cards/:id - unlinks a card from the caller.
// The card itself is deleted once its last owner removes it.
func (s *Server) RemoveCard(ctx echo.Context) error {
	login, err := requireLogin(ctx)
	if err != nil {
		return err
	}

	cardID, err := parseCardID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid card id")
	}

	cmd, err := commands.NewRemoveCardCommand(login, cardID)
	if err != nil {
		return badRequest(ctx, "Invalid card data: "+err.Error())
	}

	if handleErr := s.removeCardHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPayments handles GET /api/v1/payments - lists the caller's receipts.
func (s *Server) GetPayments(ctx echo.Context) error {
	login, err := requireLogin(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserPaymentsQuery(login)
	if err != nil {
		return badRequest(ctx, "Invalid listing filter: "+err.Error())
	}

	payments, err := s.getUserPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PaymentResponse, len(payments))
	for i, item := range payments {
		response[i] = toPaymentResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// requireLogin extracts the caller's login from the request headers.
func requireLogin(ctx echo.Context) (string, error) {
	login := ctx.Request().Header.Get(LoginHeader)
	if login == "" {
		return "", ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    ErrorCodeUnauthorized,
			Message: LoginHeader + " header is required",
		})
	}

	return login, nil
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func parseCardID(ctx echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &id).BindError(); err != nil {
		return 0, err
	}

	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    ErrorCodeBadRequest,
		Message: message,
	})
}

// respondError translates application errors to an HTTP status and a stable
// error code. The code disambiguates kinds that share a status: InvalidState
// and Conflict both ride 409, and ConfigurationMissing rides 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	code := ErrorCodeInternal

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, code = http.StatusNotFound, ErrorCodeNotFound
	case errors.Is(err, errs.ErrInsufficientFunds):
		status, code = http.StatusPaymentRequired, ErrorCodeInsufficientFunds
	case errors.Is(err, errs.ErrInvalidState):
		status, code = http.StatusConflict, ErrorCodeInvalidState
	case errors.Is(err, errs.ErrConflict):
		status, code = http.StatusConflict, ErrorCodeConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, code = http.StatusBadRequest, ErrorCodeValidation
	case errors.Is(err, errs.ErrConfigurationMissing):
		status, code = http.StatusInternalServerError, ErrorCodeConfigMissing
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
