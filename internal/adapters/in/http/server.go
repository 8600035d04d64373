package http

import (
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Commands bundles the command handlers the server dispatches to.
type Commands struct {
	SignUp            commands.SignUpCommandHandler
	VerifyAccount     commands.VerifyAccountCommandHandler
	CreateFood        commands.CreateFoodCommandHandler
	UpdateFood        commands.UpdateFoodCommandHandler
	DeleteFood        commands.DeleteFoodCommandHandler
	AddCartItem       commands.AddCartItemCommandHandler
	RemoveCartItem    commands.RemoveCartItemCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
}

// Queries bundles the query handlers the server dispatches to.
type Queries struct {
	GetProfile    queries.GetProfileQueryHandler
	GetFoods      queries.GetFoodsQueryHandler
	GetFood       queries.GetFoodQueryHandler
	GetCart       queries.GetCartQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	GetUserOrders queries.GetUserOrdersQueryHandler
}

// Server handles HTTP requests for the food ordering API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
	}
}

// RegisterRoutes attaches every API route to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/users/signup", s.SignUp)
	e.POST("/api/users/verify", s.VerifyAccount)
	e.GET("/api/users/:id", s.GetProfile)

	e.GET("/api/foods", s.GetFoods)
	e.POST("/api/foods", s.CreateFood)
	e.GET("/api/foods/:id", s.GetFood)
	e.PATCH("/api/foods/:id", s.UpdateFood)
	e.DELETE("/api/foods/:id", s.DeleteFood)

	e.POST("/api/cart", s.AddCartItem)
	e.GET("/api/cart/:userId", s.GetCart)
	e.DELETE("/api/cart/:userId/clear", s.ClearCart)
	e.DELETE("/api/cart/:userId/item/:lineId", s.RemoveCartItem)

	e.POST("/api/orders", s.PlaceOrder)
	e.GET("/api/orders/:id", s.GetOrder)
	e.GET("/api/orders/user/:userId", s.GetUserOrders)
	e.PATCH("/api/orders/:id/status", s.UpdateOrderStatus)
	e.PATCH("/api/orders/:id/cancel", s.CancelOrder)
}

// SignUp handles POST /api/users/signup - registers a new account.
// The one-time verification code is returned in the response since no
// out-of-band delivery channel is wired.
func (s *Server) SignUp(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewSignUpCommand(userID, req.Name, req.Email, req.Phone, req.ReferralCode)
	if err != nil {
		return respondError(ctx, err)
	}

	code, err := s.commands.SignUp.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SignUpResponse{
		UserID:           userID.String(),
		VerificationCode: code,
	})
}

// VerifyAccount handles POST /api/users/verify - confirms the one-time code.
func (s *Server) VerifyAccount(ctx echo.Context) error {
	var req VerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewVerifyAccountCommand(userID, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.VerifyAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProfile handles GET /api/users/:id - retrieves an account profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetProfileQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.queries.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Profile{
		ID:        profile.ID.String(),
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Role:      profile.Role,
		Verified:  profile.Verified,
		CreatedAt: profile.CreatedAt,
	})
}

// GetFoods handles GET /api/foods - lists available menu items,
// optionally filtered by category.
func (s *Server) GetFoods(ctx echo.Context) error {
	query := queries.NewGetFoodsQuery(ctx.QueryParam("category"))

	foods, err := s.queries.GetFoods.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Food, len(foods))
	for i, item := range foods {
		response[i] = foodToWire(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFood handles GET /api/foods/:id - retrieves one menu item,
// available or not.
func (s *Server) GetFood(ctx echo.Context) error {
	foodID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food ID")
	}

	query, err := queries.NewGetFoodQuery(foodID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.queries.GetFood.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, foodToWire(item))
}

// CreateFood handles POST /api/foods - adds a menu item.
func (s *Server) CreateFood(ctx echo.Context) error {
	var req CreateFoodRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	foodID := kernel.NewUUID()
	cmd, err := commands.NewCreateFoodCommand(foodID, req.Name, req.Description, price, req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CreateFood.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateFoodResponse{FoodID: foodID.String()})
}

// UpdateFood handles PATCH /api/foods/:id - partially updates a menu item.
func (s *Server) UpdateFood(ctx echo.Context) error {
	foodID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food ID")
	}

	var req UpdateFoodRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var price *kernel.Price
	if req.Price != nil {
		parsed, err := kernel.NewPrice(*req.Price)
		if err != nil {
			return respondError(ctx, err)
		}
		price = &parsed
	}

	cmd, err := commands.NewUpdateFoodCommand(foodID, req.Name, req.Description, price, req.Category, req.Available)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.UpdateFood.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteFood handles DELETE /api/foods/:id - removes a menu item.
func (s *Server) DeleteFood(ctx echo.Context) error {
	foodID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food ID")
	}

	cmd, err := commands.NewDeleteFoodCommand(foodID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.DeleteFood.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCartItem handles POST /api/cart - adds a menu item to the user's cart.
// Quantity defaults to one when omitted.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}
	foodID, err := kernel.UUIDFromString(req.FoodID)
	if err != nil {
		return badRequest(ctx, "Invalid food ID")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cmd, err := commands.NewAddCartItemCommand(userID, kernel.NewUUID(), foodID, quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	lineID, err := s.commands.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddCartItemResponse{LineID: lineID.String()})
}

// GetCart handles GET /api/cart/:userId - retrieves the cart priced at
// current menu prices.
func (s *Server) GetCart(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetCartQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	cart, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]CartLine, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = CartLine{
			LineID:    line.LineID.String(),
			FoodID:    line.FoodID.String(),
			FoodName:  line.FoodName,
			Category:  line.Category,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
			Available: line.Available,
		}
	}

	return ctx.JSON(http.StatusOK, Cart{
		UserID:           cart.UserID.String(),
		Lines:            lines,
		Total:            cart.Total,
		UnavailableCount: cart.UnavailableCount,
	})
}

// RemoveCartItem handles DELETE /api/cart/:userId/items/:lineId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, "Invalid line ID")
	}

	cmd, err := commands.NewRemoveCartItemCommand(userID, lineID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/cart/:userId - empties the cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewClearCartCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/orders - checks out the user's cart into
// an order with frozen prices.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToWire(placed))
}

// GetOrder handles GET /api/orders/:id - retrieves an order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToWire(found))
}

// GetUserOrders handles GET /api/orders/user/:userId - lists a user's
// orders, newest first, without lines.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.GetUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, summary := range orders {
		response[i] = orderToWire(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status - advances the
// order through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PATCH /api/orders/:id/cancel - lets the owner cancel
// a pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func foodToWire(item queries.FoodResponse) Food {
	return Food{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Available:   item.Available,
	}
}

func orderToWire(found queries.OrderResponse) Order {
	lines := make([]OrderLine, len(found.Lines))
	for i, line := range found.Lines {
		lines[i] = OrderLine{
			FoodID:   line.FoodID.String(),
			FoodName: line.FoodName,
			Quantity: line.Quantity,
			Price:    line.Price,
			Subtotal: line.Subtotal,
		}
	}

	return Order{
		ID:        found.ID.String(),
		UserID:    found.UserID.String(),
		Total:     found.Total,
		Status:    found.Status,
		Lines:     lines,
		CreatedAt: found.CreatedAt,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application and domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	var unavailable *commands.UnavailableItemsError
	if errors.As(err, &unavailable) {
		items := make([]UnavailableItem, len(unavailable.Items))
		for i, item := range unavailable.Items {
			items[i] = UnavailableItem{
				FoodID: item.FoodID.String(),
				Name:   item.Name,
			}
		}
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:             http.StatusBadRequest,
			Message:          err.Error(),
			UnavailableItems: items,
		})
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	switch {
	case errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrPhoneAlreadyRegistered),
		errors.Is(err, commands.ErrFoodNameTaken),
		errors.Is(err, account.ErrUserAlreadyVerified),
		errors.Is(err, order.ErrOrderAlreadyTerminal),
		errors.Is(err, order.ErrOrderNotCancellable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.Is(err, account.ErrUserNotVerified):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrInvalidReferralCode),
		errors.Is(err, commands.ErrNoFieldsToUpdate),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, account.ErrCodeExpired),
		errors.Is(err, account.ErrCodeMismatch),
		errors.Is(err, food.ErrFoodUnavailable):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
