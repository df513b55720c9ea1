package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/in/http/schema"
	"ordering/internal/adapters/out/passwords"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/tokens"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	lifecycle  services.OrderLifecycle
	hasher     *passwords.BcryptHasher
	tokens     *tokens.Manager
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	manager, err := tokens.NewManager(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to configure tokens: %w", err)
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		lifecycle:  services.NewOrderLifecycle(),
		hasher:     passwords.NewBcryptHasher(bcrypt.DefaultCost),
		tokens:     manager,
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoW(), c.hasher)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.userUoW(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoW())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoW())
}

func (c *CompositionRoot) CreateGrantAdminCommandHandler() commands.GrantAdminCommandHandler {
	return commands.NewGrantAdminCommandHandler(c.userUoW())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.uow(), c.lifecycle)
}

func (c *CompositionRoot) CreateUpdateOrderItemCommandHandler() commands.UpdateOrderItemCommandHandler {
	return commands.NewUpdateOrderItemCommandHandler(c.uow(), c.lifecycle)
}

func (c *CompositionRoot) CreateDeleteOrderItemCommandHandler() commands.DeleteOrderItemCommandHandler {
	return commands.NewDeleteOrderItemCommandHandler(c.orderUoW(), c.lifecycle)
}

func (c *CompositionRoot) CreatePurgeDeletedUsersCommandHandler() commands.PurgeDeletedUsersCommandHandler {
	return commands.NewPurgeDeletedUsersCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrderQueryHandler() queries.GetUserOrderQueryHandler {
	return queries.NewGetUserOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to load request schemas: %w", err)
	}

	registerUser := c.CreateRegisterUserCommandHandler()
	authenticateUser := c.CreateAuthenticateUserCommandHandler()
	updateUser := c.CreateUpdateUserCommandHandler()
	deleteUser := c.CreateDeleteUserCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	completeOrder := c.CreateCompleteOrderCommandHandler()
	addOrderItem := c.CreateAddOrderItemCommandHandler()
	updateOrderItem := c.CreateUpdateOrderItemCommandHandler()
	deleteOrderItem := c.CreateDeleteOrderItemCommandHandler()
	listUsers := c.CreateListUsersQueryHandler()
	getUser := c.CreateGetUserQueryHandler()
	listUserOrders := c.CreateListUserOrdersQueryHandler()
	getUserOrder := c.CreateGetUserOrderQueryHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterUser:     &registerUser,
		AuthenticateUser: &authenticateUser,
		UpdateUser:       &updateUser,
		DeleteUser:       &deleteUser,
		CreateOrder:      &createOrder,
		CompleteOrder:    &completeOrder,
		AddOrderItem:     &addOrderItem,
		UpdateOrderItem:  &updateOrderItem,
		DeleteOrderItem:  &deleteOrderItem,
		ListUsers:        &listUsers,
		GetUser:          &getUser,
		ListUserOrders:   &listUserOrders,
		GetUserOrder:     &getUserOrder,
	}, validator, c.tokens), nil
}

func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	server, err := c.CreateHTTPServer()
	if err != nil {
		return nil, err
	}
	return httpadapter.NewEcho(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purge := c.CreatePurgeDeletedUsersCommandHandler()
	return jobs.NewJobManager(&purge, c.config.PurgeSchedule, c.config.PurgeRetention, c.logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
