package http

import (
	"context"
	"encoding/json"
	"io"

	"ordering/internal/adapters/in/http/schema"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler is any command or query handler of the application layer.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, request C) (R, error)
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	RegisterUser     Handler[commands.RegisterUserCommand, *user.User]
	AuthenticateUser Handler[commands.AuthenticateUserCommand, string]
	UpdateUser       Handler[commands.UpdateUserCommand, *user.User]
	DeleteUser       Handler[commands.DeleteUserCommand, *user.User]

	CreateOrder     Handler[commands.CreateOrderCommand, *order.Order]
	CompleteOrder   Handler[commands.CompleteOrderCommand, *order.Order]
	AddOrderItem    Handler[commands.AddOrderItemCommand, *order.Item]
	UpdateOrderItem Handler[commands.UpdateOrderItemCommand, *order.Item]
	DeleteOrderItem Handler[commands.DeleteOrderItemCommand, *order.Item]

	ListUsers      Handler[queries.ListUsersQuery, []queries.UserView]
	GetUser        Handler[queries.GetUserQuery, queries.UserView]
	ListUserOrders Handler[queries.ListUserOrdersQuery, []queries.OrderView]
	GetUserOrder   Handler[queries.GetUserOrderQuery, queries.OrderView]
}

// Server coordinates between HTTP requests and application use cases.
//
// Every protected handler checks, in order: the bearer token, the user id in
// the path, the ownership gate, the remaining path ids, then the body schema.
// Nothing reaches a use case before all of these pass.
type Server struct {
	handlers  Handlers
	validator *schema.Validator
	verifier  TokenVerifier
	gate      Gate
}

func NewServer(handlers Handlers, validator *schema.Validator, verifier TokenVerifier) *Server {
	return &Server{
		handlers:  handlers,
		validator: validator,
		verifier:  verifier,
	}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/users", s.RegisterUser)
	e.POST("/users/authenticate", s.AuthenticateUser)

	users := e.Group("/users", Authenticate(s.verifier))
	users.GET("", s.ListUsers)
	users.GET("/:userId", s.GetUser)
	users.PUT("/:userId", s.UpdateUser)
	users.DELETE("/:userId", s.DeleteUser)

	users.GET("/:userId/orders", s.ListOrders)
	users.POST("/:userId/orders", s.CreateOrder)
	users.GET("/:userId/orders/:orderId", s.GetOrder)
	users.PUT("/:userId/orders/:orderId", s.CompleteOrder)
	users.POST("/:userId/orders/:orderId/items", s.AddOrderItem)
	users.PUT("/:userId/orders/:orderId/items/:itemId", s.UpdateOrderItem)
	users.DELETE("/:userId/orders/:orderId/items/:itemId", s.DeleteOrderItem)
}

// owner binds the userId path parameter and lets only that user or an admin through.
func (s *Server) owner(c echo.Context) (kernel.ID, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return kernel.ID{}, err
	}

	userID, err := bindID(c, "userId", "user")
	if err != nil {
		return kernel.ID{}, err
	}

	if err = s.gate.Approve(actor, userID); err != nil {
		return kernel.ID{}, err
	}
	return userID, nil
}

func (s *Server) admin(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	return s.gate.RequireAdmin(actor)
}

// decode validates the body against kind and unmarshals it into dst.
func (s *Server) decode(c echo.Context, kind schema.Kind, dst any) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	if err = s.validator.Validate(kind, payload); err != nil {
		return err
	}

	if err = json.Unmarshal(payload, dst); err != nil {
		return schema.ErrMalformedBody
	}
	return nil
}
