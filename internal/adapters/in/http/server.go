// Package http exposes the order lifecycle operations over HTTP.
// It coordinates between echo handlers and the application use cases, translating
// domain errors into status codes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Error is the JSON error payload returned by all handlers.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest describes one line item in an order creation request.
type ItemRequest struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	Items         []ItemRequest `json:"items"`
}

// ItemResponse is the JSON shape of one line item.
type ItemResponse struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderResponse is the JSON shape of an order, items included. Status carries the
// wire value ("PENDING", "SHIPPED", ...).
type OrderResponse struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	Status        string         `json:"status"`
	TotalAmount   float64        `json:"totalAmount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Items         []ItemResponse `json:"items"`
}

// Server wires the HTTP routes to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersHandler:         getOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance. Every /api route
// requires the shared secret in the X-API-Key header; the health endpoint stays
// open for probes.
func (s *Server) RegisterRoutes(e *echo.Echo, apiKey string) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := e.Group("/api", middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:X-API-Key",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return key == apiKey, nil
		},
	}))

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
}

// CreateOrder handles POST /api/orders - registers a new order in PENDING status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerName, request.CustomerEmail, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(created))
}

// GetOrder handles GET /api/orders/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(*result))
}

// GetOrders handles GET /api/orders - lists orders, optionally filtered by the
// status query parameter (exact match on the wire value).
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status value: " + statusParam,
			})
		}

		query, err = queries.NewGetOrdersInStatusQuery(status)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status value: " + statusParam,
			})
		}
	}

	results, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderResponse, 0, len(results))
	for _, result := range results {
		response = append(response, fromReadModel(result))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - unconditionally overwrites
// the order's status. The body is a JSON string with the new status wire value.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var statusValue string
	if err = json.NewDecoder(ctx.Request().Body).Decode(&statusValue); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(statusValue)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status value: " + statusValue,
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// CancelOrder handles PUT /api/orders/:id/cancel - cancels a PENDING order.
// Orders in any other status yield a conflict and remain unchanged.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(cancelled))
}

// errorResponse maps application errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// fromAggregate maps a domain order onto the JSON response shape.
func fromAggregate(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, ItemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
			Subtotal:    item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:            aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.TotalAmount(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Items:         itemResponses,
	}
}

// fromReadModel maps a query read model onto the JSON response shape.
func fromReadModel(result queries.OrderResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, ItemResponse{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	return OrderResponse{
		ID:            result.ID.String(),
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		Status:        result.Status,
		TotalAmount:   result.TotalAmount,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
		Items:         items,
	}
}
