package http

import (
	"net/http"

	"ordering/internal/adapters/in/http/schema"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /users/:userId/orders?status=.
func (s *Server) ListOrders(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListUserOrdersQuery(userID, c.QueryParam("status"))
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromView(o))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /users/:userId/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	var body orderCreate
	if err = s.decode(c, schema.OrderCreate, &body); err != nil {
		return err
	}

	bodyUserID, err := kernel.NewID(body.UserID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(userID, bodyUserID)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newOrderResponse(created))
}

// GetOrder handles GET /users/:userId/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	orderID, err := bindID(c, "orderId", "order")
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserOrderQuery(userID, orderID)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetUserOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderDetailFromView(view))
}

// CompleteOrder handles PUT /users/:userId/orders/:orderId.
func (s *Server) CompleteOrder(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	orderID, err := bindID(c, "orderId", "order")
	if err != nil {
		return err
	}

	var body orderUpdate
	if err = s.decode(c, schema.OrderUpdate, &body); err != nil {
		return err
	}

	bodyOrderID, err := kernel.NewID(body.ID)
	if err != nil {
		return err
	}
	bodyUserID, err := kernel.NewID(body.UserID)
	if err != nil {
		return err
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(userID, orderID, bodyUserID, bodyOrderID, status)
	if err != nil {
		return err
	}

	updated, err := s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderResponse(updated))
}

// AddOrderItem handles POST /users/:userId/orders/:orderId/items.
func (s *Server) AddOrderItem(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	orderID, err := bindID(c, "orderId", "order")
	if err != nil {
		return err
	}

	var body orderItemInput
	if err = s.decode(c, schema.OrderItemInput, &body); err != nil {
		return err
	}

	bodyOrderID, err := optionalID(body.OrderID)
	if err != nil {
		return err
	}
	productID, err := kernel.NewID(body.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderItemCommand(userID, orderID, bodyOrderID, productID, body.Quantity)
	if err != nil {
		return err
	}

	created, err := s.handlers.AddOrderItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newItemResponse(created))
}

// UpdateOrderItem handles PUT /users/:userId/orders/:orderId/items/:itemId.
func (s *Server) UpdateOrderItem(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	orderID, err := bindID(c, "orderId", "order")
	if err != nil {
		return err
	}
	itemID, err := bindID(c, "itemId", "order item")
	if err != nil {
		return err
	}

	var body orderItemUpdate
	if err = s.decode(c, schema.OrderItemUpdate, &body); err != nil {
		return err
	}

	bodyOrderID, err := optionalID(body.OrderID)
	if err != nil {
		return err
	}
	bodyItemID, err := kernel.NewID(body.ID)
	if err != nil {
		return err
	}
	productID, err := kernel.NewID(body.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderItemCommand(userID, orderID, itemID, bodyOrderID, bodyItemID, productID, body.Quantity)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateOrderItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newItemResponse(updated))
}

// DeleteOrderItem handles DELETE /users/:userId/orders/:orderId/items/:itemId.
func (s *Server) DeleteOrderItem(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	orderID, err := bindID(c, "orderId", "order")
	if err != nil {
		return err
	}
	itemID, err := bindID(c, "itemId", "order item")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderItemCommand(userID, orderID, itemID)
	if err != nil {
		return err
	}

	removed, err := s.handlers.DeleteOrderItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newItemResponse(removed))
}
