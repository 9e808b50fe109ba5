// Package http adapts the shipment use cases to the REST API. Transport
// concerns live here: token verification, role gating, request decoding, and
// the mapping of core errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"
)

// updateResponseEventLimit caps the event history returned inline with a
// mutation response. Clients needing the full history fetch the shipment.
const updateResponseEventLimit = 10

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler

	// Query handlers
	getShipmentHandler        queries.GetShipmentQueryHandler
	getOrderShipmentsHandler  queries.GetOrderShipmentsQueryHandler
	getSellerShipmentsHandler queries.GetSellerShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getOrderShipmentsHandler queries.GetOrderShipmentsQueryHandler,
	getSellerShipmentsHandler queries.GetSellerShipmentsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:     createShipmentHandler,
		updateShipmentHandler:     updateShipmentHandler,
		getShipmentHandler:        getShipmentHandler,
		getOrderShipmentsHandler:  getOrderShipmentsHandler,
		getSellerShipmentsHandler: getSellerShipmentsHandler,
	}
}

// caller is the authenticated identity of the current request.
type caller struct {
	id   kernel.UUID
	role access.Role
}

// callerFromContext resolves the verified claims into core identifiers.
func callerFromContext(ctx echo.Context) (caller, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return caller{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return caller{}, ErrInvalidToken
	}

	role, err := access.RoleFromString(claims.Role)
	if err != nil {
		return caller{}, ErrInvalidToken
	}

	return caller{id: id, role: role}, nil
}

// canManageShipments reports whether the caller may create or update
// shipments. Buyers only read.
func (c caller) canManageShipments() bool {
	return c.role == access.RoleSeller || c.role.IsAdmin()
}

// writeError maps core errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Invalid or expired token",
	})
}

func sellerRoleRequired(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, servers.Error{
		Code:    http.StatusForbidden,
		Message: "Seller role required",
	})
}

// GetSellerShipments handles GET /api/v1/shipments - lists the caller's
// shipments across all owned stores, filtered and paginated.
func (s *Server) GetSellerShipments(ctx echo.Context, params servers.GetSellerShipmentsParams) error {
	who, err := callerFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if !who.canManageShipments() {
		return sellerRoleRequired(ctx)
	}

	var status *shipment.Status
	if params.Status != nil && *params.Status != "" {
		parsed, parseErr := shipment.StatusFromString(*params.Status)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		status = &parsed
	}

	var search string
	if params.Search != nil {
		search = *params.Search
	}
	var page, limit int
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetSellerShipmentsQuery(who.id, status, search, page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getSellerShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// CreateShipment handles POST /api/v1/shipments - creates a shipment for a
// subset of an order's items.
func (s *Server) CreateShipment(ctx echo.Context) error {
	who, err := callerFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if !who.canManageShipments() {
		return sellerRoleRequired(ctx)
	}

	var body servers.CreateShipmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	storeID, err := kernel.UUIDFromBytes(body.StoreId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	itemIDs := make([]kernel.UUID, 0, len(body.ItemIds))
	for _, raw := range body.ItemIds {
		itemID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		itemIDs = append(itemIDs, itemID)
	}

	cmd, err := commands.NewCreateShipmentCommand(orderID, storeID, who.id, itemIDs, shipment.Details{
		Carrier:           stringValue(body.Carrier),
		TrackingNumber:    stringValue(body.TrackingNumber),
		TrackingURL:       stringValue(body.TrackingUrl),
		Notes:             stringValue(body.Notes),
		EstimatedDelivery: body.EstimatedDelivery,
		ShippingCost:      body.ShippingCost,
		Weight:            body.Weight,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.fetchShipmentResponse(ctx, who, created.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetShipment handles GET /api/v1/shipments/:shipmentId - returns one
// shipment with its full event history, or a null body when it does not
// exist.
func (s *Server) GetShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	who, err := callerFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, who.id, who.role)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShipment handles PATCH /api/v1/shipments/:shipmentId - applies a
// partial detail update and an optional status transition.
func (s *Server) UpdateShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	who, err := callerFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if !who.canManageShipments() {
		return sellerRoleRequired(ctx)
	}

	var body servers.UpdateShipmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var status *shipment.Status
	if body.Status != nil {
		parsed, parseErr := shipment.StatusFromString(string(*body.Status))
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, who.id, status, shipment.Patch{
		Carrier:           body.Carrier,
		TrackingNumber:    body.TrackingNumber,
		TrackingURL:       body.TrackingUrl,
		Notes:             body.Notes,
		EstimatedDelivery: body.EstimatedDelivery,
		ShippingCost:      body.ShippingCost,
		Weight:            body.Weight,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.fetchShipmentResponse(ctx, who, updated.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderShipments handles GET /api/v1/orders/:orderId/shipments - lists
// all shipments of an order visible to the caller.
func (s *Server) GetOrderShipments(ctx echo.Context, orderId openapi_types.UUID) error {
	who, err := callerFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderShipmentsQuery(orderID, who.id, who.role)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// fetchShipmentResponse loads the read model of a freshly mutated shipment
// so mutation responses carry the same shape as reads. The inline event
// history is capped.
func (s *Server) fetchShipmentResponse(
	ctx echo.Context, who caller, shipmentID kernel.UUID,
) (*queries.ShipmentResponse, error) {
	query, err := queries.NewGetShipmentQuery(shipmentID, who.id, who.role)
	if err != nil {
		return nil, err
	}

	response, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, err
	}
	if response != nil && len(response.Events) > updateResponseEventLimit {
		response.Events = response.Events[:updateResponseEventLimit]
	}

	return response, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
