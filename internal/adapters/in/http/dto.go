package http

import (
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
)

// Request bodies. Shapes are enforced by the schema validator before decoding.
type (
	userInput struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Password  string `json:"password"`
	}

	userUpdate struct {
		ID        *int64 `json:"id,omitempty"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}

	credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	orderCreate struct {
		UserID int64 `json:"userId"`
	}

	orderUpdate struct {
		ID     int64  `json:"id"`
		UserID int64  `json:"userId"`
		Status string `json:"status"`
	}

	orderItemInput struct {
		OrderID   *int64 `json:"orderId"`
		ProductID int64  `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	orderItemUpdate struct {
		ID        int64  `json:"id"`
		OrderID   *int64 `json:"orderId"`
		ProductID int64  `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
)

type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func newUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID().Int64(),
		Email:     u.Email(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Role:      u.Role().String(),
	}
}

func userResponseFromView(v queries.UserView) userResponse {
	return userResponse{
		ID:        v.ID.Int64(),
		Email:     v.Email,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Role:      v.Role,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type orderResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

func newOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:     o.ID().Int64(),
		UserID: o.UserID().Int64(),
		Status: o.Status().String(),
	}
}

func orderResponseFromView(v queries.OrderView) orderResponse {
	return orderResponse{
		ID:     v.ID.Int64(),
		UserID: v.UserID.Int64(),
		Status: v.Status,
	}
}

// orderDetailResponse always carries the items array, even when empty.
type orderDetailResponse struct {
	orderResponse
	Items []itemResponse `json:"items"`
}

func orderDetailFromView(v queries.OrderView) orderDetailResponse {
	items := make([]itemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, itemResponse{
			ID:        item.ID.Int64(),
			OrderID:   item.OrderID.Int64(),
			ProductID: item.ProductID.Int64(),
			Quantity:  item.Quantity,
		})
	}

	return orderDetailResponse{
		orderResponse: orderResponseFromView(v),
		Items:         items,
	}
}

type itemResponse struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"orderId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func newItemResponse(item *order.Item) itemResponse {
	return itemResponse{
		ID:        item.ID().Int64(),
		OrderID:   item.OrderID().Int64(),
		ProductID: item.ProductID().Int64(),
		Quantity:  item.Quantity(),
	}
}
