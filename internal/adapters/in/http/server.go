// Package http exposes the application over an echo HTTP surface.
//
// Authentication lives outside this service: the caller's identity arrives
// pre-resolved in the X-User-Id header (and X-User-Role for the list
// endpoint, where the role scopes the query). Commands re-check roles against
// the database, so a forged role header cannot change state it should not.
package http

import (
	"net/http"
	"strconv"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the pre-resolved identity of the caller.
const HeaderUserID = "X-User-Id"

// HeaderUserRole carries the caller's role for read endpoints that scope by role.
const HeaderUserRole = "X-User-Role"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerUserHandler     commands.RegisterUserCommandHandler
	createRestaurantHandler commands.CreateRestaurantCommandHandler
	addDishHandler          commands.AddDishCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	editOrderStatusHandler  commands.EditOrderStatusCommandHandler
	takeOrderHandler        commands.TakeOrderCommandHandler

	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getOwnerOrdersHandler     queries.GetOwnerOrdersQueryHandler
	getDriverOrdersHandler    queries.GetDriverOrdersQueryHandler
	getDriverOrderHandler     queries.GetDriverOrderQueryHandler
	getDriverOwnOrdersHandler queries.GetDriverOwnOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	addDishHandler commands.AddDishCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderStatusHandler commands.EditOrderStatusCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOwnerOrdersHandler queries.GetOwnerOrdersQueryHandler,
	getDriverOrdersHandler queries.GetDriverOrdersQueryHandler,
	getDriverOrderHandler queries.GetDriverOrderQueryHandler,
	getDriverOwnOrdersHandler queries.GetDriverOwnOrdersQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:       registerUserHandler,
		createRestaurantHandler:   createRestaurantHandler,
		addDishHandler:            addDishHandler,
		createOrderHandler:        createOrderHandler,
		editOrderStatusHandler:    editOrderStatusHandler,
		takeOrderHandler:          takeOrderHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getOwnerOrdersHandler:     getOwnerOrdersHandler,
		getDriverOrdersHandler:    getDriverOrdersHandler,
		getDriverOrderHandler:     getDriverOrderHandler,
		getDriverOwnOrdersHandler: getDriverOwnOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.POST("/restaurants", s.CreateRestaurant)
	api.POST("/restaurants/:restaurantId/dishes", s.AddDish)
	api.GET("/restaurants/:restaurantId/orders", s.GetOwnerOrders)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.EditOrderStatus)
	api.POST("/orders/:orderId/take", s.TakeOrder)

	api.GET("/driver/orders", s.GetDriverOrders)
	api.GET("/driver/orders/:orderId", s.GetDriverOrder)
	api.GET("/driver/rides", s.GetDriverOwnOrders)
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	ownerID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateRestaurantRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, ownerID, req.Name, position)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: restaurantID.String()})
}

// AddDish handles POST /api/v1/restaurants/:restaurantId/dishes.
func (s *Server) AddDish(ctx echo.Context) error {
	ownerID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}

	var req AddDishRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	dishID := kernel.NewUUID()
	cmd, err := commands.NewAddDishCommand(dishID, restaurantID, ownerID, req.Name, req.Price, req.Options)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: dishID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		dishID, dishErr := kernel.UUIDFromString(item.DishID)
		if dishErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("dishId", dishErr))
		}
		lines = append(lines, commands.OrderLine{DishID: dishID, Selections: item.Selections})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, restaurantID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// EditOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) EditOrderStatus(ctx echo.Context) error {
	actorID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req EditOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEditOrderStatusCommand(orderID, actorID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.editOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TakeOrder handles POST /api/v1/orders/:orderId/take.
func (s *Server) TakeOrder(ctx echo.Context) error {
	driverID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewTakeOrderCommand(orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.takeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	role, err := user.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return writeError(ctx, err)
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(userID, role, status)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetOrderQuery(userID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := orderFromQuery(result.OrderResponse)
	response.Items = itemsFromQuery(result.Items)

	return ctx.JSON(http.StatusOK, response)
}

// GetOwnerOrders handles GET /api/v1/restaurants/:restaurantId/orders.
func (s *Server) GetOwnerOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}

	statuses, err := statusesParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOwnerOrdersQuery(restaurantID, statuses)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOwnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		entry := orderFromQuery(o.OrderResponse)
		entry.Items = itemsFromQuery(o.Items)
		response = append(response, entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverOrders handles GET /api/v1/driver/orders.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	position, err := positionParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	statuses, err := statusesParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverOrdersQuery(position, statuses)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DriverOrderResponse, 0, len(orders))
	for _, o := range orders {
		distance := o.DistanceMeters
		response = append(response, DriverOrderResponse{
			OrderResponse:       orderFromQuery(o.OrderResponse),
			RestaurantLatitude:  o.RestaurantPosition.Latitude(),
			RestaurantLongitude: o.RestaurantPosition.Longitude(),
			DistanceMeters:      &distance,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverOrder handles GET /api/v1/driver/orders/:orderId.
func (s *Server) GetDriverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var position *kernel.GeoPoint
	if ctx.QueryParam("lat") != "" || ctx.QueryParam("lng") != "" {
		parsed, posErr := positionParams(ctx)
		if posErr != nil {
			return writeError(ctx, posErr)
		}
		position = &parsed
	}

	query, err := queries.NewGetDriverOrderQuery(orderID, position)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getDriverOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DriverOrderResponse{
		OrderResponse:       orderFromQuery(result.OrderResponse),
		RestaurantLatitude:  result.RestaurantPosition.Latitude(),
		RestaurantLongitude: result.RestaurantPosition.Longitude(),
		DistanceMeters:      result.DistanceMeters,
	})
}

// GetDriverOwnOrders handles GET /api/v1/driver/rides.
func (s *Server) GetDriverOwnOrders(ctx echo.Context) error {
	driverID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverOwnOrdersQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getDriverOwnOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// callerID extracts the pre-resolved caller identity from the request headers.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(HeaderUserID + " header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID+" header", err)
	}

	return id, nil
}

// positionParams parses the lat/lng query parameters into a GeoPoint.
func positionParams(ctx echo.Context) (kernel.GeoPoint, error) {
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}

	lng, err := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lng", err)
	}

	return kernel.NewGeoPoint(lat, lng)
}

// statusesParam parses the repeated status query parameter.
func statusesParam(ctx echo.Context) ([]order.Status, error) {
	raw := ctx.QueryParams()["status"]
	statuses := make([]order.Status, 0, len(raw))
	for _, s := range raw {
		status, err := order.StatusFromString(s)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
