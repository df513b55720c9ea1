package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/in/http/schema"
	"ordering/internal/adapters/out/tokens"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHandler[C any, R any] struct {
	mock.Mock
}

func (m *mockHandler[C, R]) Handle(ctx context.Context, request C) (R, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}

type fixture struct {
	e      *echo.Echo
	tokens *tokens.Manager

	registerUser     *mockHandler[commands.RegisterUserCommand, *user.User]
	authenticateUser *mockHandler[commands.AuthenticateUserCommand, string]
	updateUser       *mockHandler[commands.UpdateUserCommand, *user.User]
	deleteUser       *mockHandler[commands.DeleteUserCommand, *user.User]
	createOrder      *mockHandler[commands.CreateOrderCommand, *order.Order]
	completeOrder    *mockHandler[commands.CompleteOrderCommand, *order.Order]
	addOrderItem     *mockHandler[commands.AddOrderItemCommand, *order.Item]
	updateOrderItem  *mockHandler[commands.UpdateOrderItemCommand, *order.Item]
	deleteOrderItem  *mockHandler[commands.DeleteOrderItemCommand, *order.Item]
	listUsers        *mockHandler[queries.ListUsersQuery, []queries.UserView]
	getUser          *mockHandler[queries.GetUserQuery, queries.UserView]
	listUserOrders   *mockHandler[queries.ListUserOrdersQuery, []queries.OrderView]
	getUserOrder     *mockHandler[queries.GetUserOrderQuery, queries.OrderView]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	manager, err := tokens.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	validator, err := schema.NewValidator()
	require.NoError(t, err)

	f := &fixture{
		tokens:           manager,
		registerUser:     new(mockHandler[commands.RegisterUserCommand, *user.User]),
		authenticateUser: new(mockHandler[commands.AuthenticateUserCommand, string]),
		updateUser:       new(mockHandler[commands.UpdateUserCommand, *user.User]),
		deleteUser:       new(mockHandler[commands.DeleteUserCommand, *user.User]),
		createOrder:      new(mockHandler[commands.CreateOrderCommand, *order.Order]),
		completeOrder:    new(mockHandler[commands.CompleteOrderCommand, *order.Order]),
		addOrderItem:     new(mockHandler[commands.AddOrderItemCommand, *order.Item]),
		updateOrderItem:  new(mockHandler[commands.UpdateOrderItemCommand, *order.Item]),
		deleteOrderItem:  new(mockHandler[commands.DeleteOrderItemCommand, *order.Item]),
		listUsers:        new(mockHandler[queries.ListUsersQuery, []queries.UserView]),
		getUser:          new(mockHandler[queries.GetUserQuery, queries.UserView]),
		listUserOrders:   new(mockHandler[queries.ListUserOrdersQuery, []queries.OrderView]),
		getUserOrder:     new(mockHandler[queries.GetUserOrderQuery, queries.OrderView]),
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		RegisterUser:     f.registerUser,
		AuthenticateUser: f.authenticateUser,
		UpdateUser:       f.updateUser,
		DeleteUser:       f.deleteUser,
		CreateOrder:      f.createOrder,
		CompleteOrder:    f.completeOrder,
		AddOrderItem:     f.addOrderItem,
		UpdateOrderItem:  f.updateOrderItem,
		DeleteOrderItem:  f.deleteOrderItem,
		ListUsers:        f.listUsers,
		GetUser:          f.getUser,
		ListUserOrders:   f.listUserOrders,
		GetUserOrder:     f.getUserOrder,
	}, validator, manager)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.e, err = httpadapter.NewEcho(server, logger)
	require.NoError(t, err)

	return f
}

func (f *fixture) token(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	token, err := f.tokens.Issue(mustID(t, userID), role)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) assertNoUseCase(t *testing.T) {
	t.Helper()
	for _, m := range []*mock.Mock{
		&f.registerUser.Mock, &f.authenticateUser.Mock, &f.updateUser.Mock, &f.deleteUser.Mock,
		&f.createOrder.Mock, &f.completeOrder.Mock, &f.addOrderItem.Mock, &f.updateOrderItem.Mock,
		&f.deleteOrderItem.Mock, &f.listUsers.Mock, &f.getUser.Mock, &f.listUserOrders.Mock,
		&f.getUserOrder.Mock,
	} {
		m.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var resp httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, rec.Code, resp.Code)
	return resp
}

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func restoredOrder(t *testing.T, id, userID int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(mustID(t, id), mustID(t, userID), status)
	require.NoError(t, err)
	return o
}

func restoredItem(t *testing.T, id, orderID, productID int64, quantity int) *order.Item {
	t.Helper()
	item, err := order.RestoreItem(mustID(t, id), mustID(t, orderID), mustID(t, productID), quantity)
	require.NoError(t, err)
	return item
}

func restoredUser(t *testing.T, id int64, role user.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(mustID(t, id), "ada@example.com", "Ada", "Lovelace", "hash", role)
	require.NoError(t, err)
	return u
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ordering API")
}

func TestUnknownRoute_RendersErrorBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/nowhere", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not-found", decodeError(t, rec).Kind)
}

func TestRequestID_IsGenerated(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestProtectedRoutes_RequireValidToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/7"},
		{http.MethodPut, "/users/7"},
		{http.MethodDelete, "/users/7"},
		{http.MethodGet, "/users/7/orders"},
		{http.MethodPost, "/users/7/orders"},
		{http.MethodGet, "/users/7/orders/3"},
		{http.MethodPut, "/users/7/orders/3"},
		{http.MethodPost, "/users/7/orders/3/items"},
		{http.MethodPut, "/users/7/orders/3/items/5"},
		{http.MethodDelete, "/users/7/orders/3/items/5"},
	}

	f := newFixture(t)
	for _, route := range routes {
		for name, token := range map[string]string{"missing": "", "garbage": "not.a.token"} {
			t.Run(route.method+" "+route.path+" "+name, func(t *testing.T) {
				rec := f.do(route.method, route.path, token, `{}`)

				require.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, "unauthorized", decodeError(t, rec).Kind)
			})
		}
	}
	f.assertNoUseCase(t)
}

func TestGate_ForeignUserIsForbidden(t *testing.T) {
	// Given user 8 acting on user 7's resources
	f := newFixture(t)
	token := f.token(t, 8, user.RoleUser)

	for _, path := range []string{"/users/7", "/users/7/orders", "/users/7/orders/3"} {
		t.Run(path, func(t *testing.T) {
			// When
			rec := f.do(http.MethodGet, path, token, "")

			// Then
			require.Equal(t, http.StatusForbidden, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, "forbidden", resp.Kind)
			assert.Equal(t, "You are not allowed to access this resource", resp.Message)
		})
	}
	f.assertNoUseCase(t)
}

func TestGate_AdminMayActForOthers(t *testing.T) {
	f := newFixture(t)
	f.listUserOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListUserOrdersQuery) bool {
		return q.UserID().Int64() == 7 && q.Status() == nil
	})).Return([]queries.OrderView{}, nil).Once()

	rec := f.do(http.MethodGet, "/users/7/orders", f.token(t, 1, user.RoleAdmin), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	f.listUserOrders.AssertExpectations(t)
}

func TestAdminOnlyRoutes(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, 7, user.RoleUser)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodDelete, "/users/7"},
	} {
		rec := f.do(route.method, route.path, token, "")
		require.Equal(t, http.StatusForbidden, rec.Code, route.path)
	}
	f.assertNoUseCase(t)
}

func TestInvalidIdentifiers_RejectedBeforeUseCase(t *testing.T) {
	tests := []struct {
		method  string
		path    string
		message string
	}{
		{http.MethodGet, "/users/abc/orders", "The user id is not a valid number"},
		{http.MethodGet, "/users/0/orders", "The user id is not a valid number"},
		{http.MethodGet, "/users/-7", "The user id is not a valid number"},
		{http.MethodGet, "/users/7/orders/x", "The order id is not a valid number"},
		{http.MethodGet, "/users/7/orders/1.5", "The order id is not a valid number"},
		{http.MethodPut, "/users/7/orders/3/items/five", "The order item id is not a valid number"},
		{http.MethodDelete, "/users/7/orders/3/items/0", "The order item id is not a valid number"},
		{http.MethodDelete, "/users/7/orders/99999999999999999999/items/1", "The order id is not a valid number"},
	}

	f := newFixture(t)
	token := f.token(t, 1, user.RoleAdmin)
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := f.do(tt.method, tt.path, token, `{"id":5,"productId":1,"quantity":1}`)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, "bad-request", resp.Kind)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
	f.assertNoUseCase(t)
}

func TestAddOrderItem_QuantityZero_RejectedBeforeUseCase(t *testing.T) {
	// Given
	f := newFixture(t)

	// When
	rec := f.do(http.MethodPost, "/users/7/orders/3/items", f.token(t, 7, user.RoleUser),
		`{"productId":1,"quantity":0}`)

	// Then
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "bad-request", resp.Kind)
	assert.True(t, strings.HasPrefix(resp.Message, "quantity: "), resp.Message)
	f.assertNoUseCase(t)
}

func TestAddOrderItem_Created(t *testing.T) {
	f := newFixture(t)
	f.addOrderItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddOrderItemCommand) bool {
		return cmd.UserID().Int64() == 7 && cmd.OrderID().Int64() == 3 &&
			cmd.ProductID().Int64() == 1 && cmd.Quantity() == 2
	})).Return(restoredItem(t, 5, 3, 1, 2), nil).Once()

	rec := f.do(http.MethodPost, "/users/7/orders/3/items", f.token(t, 7, user.RoleUser),
		`{"productId":1,"quantity":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":5,"orderId":3,"productId":1,"quantity":2}`, rec.Body.String())
	f.addOrderItem.AssertExpectations(t)
}

func TestOrderItems_BodyOrderIDMustMatchPath(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"add item", http.MethodPost, "/users/7/orders/5/items", `{"orderId":99,"productId":1,"quantity":2}`},
		{"update item", http.MethodPut, "/users/7/orders/5/items/3", `{"id":3,"orderId":99,"productId":1,"quantity":4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			f := newFixture(t)

			// When
			rec := f.do(tt.method, tt.path, f.token(t, 7, user.RoleUser), tt.body)

			// Then
			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, "bad-request", resp.Kind)
			assert.Equal(t, "Mismatched order ids", resp.Message)
			f.assertNoUseCase(t)
		})
	}
}

func TestOrderItems_MatchingBodyOrderIDIsAccepted(t *testing.T) {
	f := newFixture(t)
	f.addOrderItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddOrderItemCommand) bool {
		return cmd.OrderID().Int64() == 5
	})).Return(restoredItem(t, 1, 5, 1, 2), nil).Once()
	f.updateOrderItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderItemCommand) bool {
		return cmd.OrderID().Int64() == 5 && cmd.ItemID().Int64() == 3
	})).Return(restoredItem(t, 3, 5, 1, 4), nil).Once()

	added := f.do(http.MethodPost, "/users/7/orders/5/items", f.token(t, 7, user.RoleUser),
		`{"orderId":5,"productId":1,"quantity":2}`)
	updated := f.do(http.MethodPut, "/users/7/orders/5/items/3", f.token(t, 7, user.RoleUser),
		`{"id":3,"orderId":5,"productId":1,"quantity":4}`)

	assert.Equal(t, http.StatusCreated, added.Code)
	assert.Equal(t, http.StatusOK, updated.Code)
	f.addOrderItem.AssertExpectations(t)
	f.updateOrderItem.AssertExpectations(t)
}

func TestCreateOrder_OnlyActiveStatusAccepted(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/users/7/orders", f.token(t, 7, user.RoleUser),
		`{"userId":7,"status":"complete"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad-request", decodeError(t, rec).Kind)
	f.assertNoUseCase(t)

	f.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(restoredOrder(t, 3, 7, order.Active), nil).Once()

	rec = f.do(http.MethodPost, "/users/7/orders", f.token(t, 7, user.RoleUser),
		`{"userId":7,"status":"active"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	f.createOrder.AssertExpectations(t)
}

func TestCreateOrder(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		result    *order.Order
		handleErr error
		wantCode  int
		wantKind  string
		wantMsg   string
	}{
		{
			name:     "created",
			body:     `{"userId":7}`,
			result:   restoredOrder(t, 3, 7, order.Active),
			wantCode: http.StatusCreated,
		},
		{
			name:      "second active order",
			body:      `{"userId":7}`,
			handleErr: order.ErrActiveOrderAlreadyExists,
			wantCode:  http.StatusForbidden,
			wantKind:  "forbidden",
			wantMsg:   "Could not create the order: an active order already exists",
		},
		{
			name:      "unknown user",
			body:      `{"userId":7}`,
			handleErr: errs.NewObjectNotFoundError("user", int64(7)),
			wantCode:  http.StatusNotFound,
			wantKind:  "not-found",
			wantMsg:   "The user with the given id was not found",
		},
		{
			name:      "store failure",
			body:      `{"userId":7}`,
			handleErr: errors.New("connection reset"),
			wantCode:  http.StatusInternalServerError,
			wantKind:  "internal",
			wantMsg:   "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
				return cmd.UserID().Int64() == 7
			})).Return(tt.result, tt.handleErr).Once()

			rec := f.do(http.MethodPost, "/users/7/orders", f.token(t, 7, user.RoleUser), tt.body)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.handleErr == nil {
				assert.JSONEq(t, `{"id":3,"userId":7,"status":"active"}`, rec.Body.String())
			} else {
				resp := decodeError(t, rec)
				assert.Equal(t, tt.wantKind, resp.Kind)
				assert.Equal(t, tt.wantMsg, resp.Message)
			}
			f.createOrder.AssertExpectations(t)
		})
	}
}

func TestCreateOrder_MismatchedUserIDs(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/users/7/orders", f.token(t, 7, user.RoleUser), `{"userId":8}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mismatched user ids", decodeError(t, rec).Message)
	f.assertNoUseCase(t)
}

func TestCompleteOrder(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		handleErr error
		wantCode  int
		wantMsg   string
	}{
		{"completed", `{"id":3,"userId":7,"status":"complete"}`, nil, http.StatusOK, ""},
		{"already complete", `{"id":3,"userId":7,"status":"complete"}`, order.ErrOrderAlreadyCompleted,
			http.StatusForbidden, "Updating an order that is not active is not allowed"},
		{"status other than complete", `{"id":3,"userId":7,"status":"active"}`, order.ErrInvalidStatusForOperation,
			http.StatusBadRequest, "Invalid status for this operation"},
		{"missing order", `{"id":3,"userId":7,"status":"complete"}`, errs.NewObjectNotFoundError("order", int64(3)),
			http.StatusNotFound, "The order with the given id was not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var result *order.Order
			if tt.handleErr == nil {
				result = restoredOrder(t, 3, 7, order.Complete)
			}
			f.completeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CompleteOrderCommand) bool {
				return cmd.UserID().Int64() == 7 && cmd.OrderID().Int64() == 3
			})).Return(result, tt.handleErr).Once()

			rec := f.do(http.MethodPut, "/users/7/orders/3", f.token(t, 7, user.RoleUser), tt.body)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.handleErr == nil {
				assert.JSONEq(t, `{"id":3,"userId":7,"status":"complete"}`, rec.Body.String())
			} else {
				assert.Equal(t, tt.wantMsg, decodeError(t, rec).Message)
			}
		})
	}
}

func TestCompleteOrder_BoundaryChecks(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"user mismatch", `{"id":3,"userId":8,"status":"complete"}`, "Mismatched user ids"},
		{"order mismatch", `{"id":4,"userId":7,"status":"complete"}`, "Mismatched order ids"},
		{"unknown status", `{"id":3,"userId":7,"status":"shipped"}`, ""},
		{"missing status", `{"id":3,"userId":7}`, ""},
	}

	f := newFixture(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPut, "/users/7/orders/3", f.token(t, 7, user.RoleUser), tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, decodeError(t, rec).Message)
			}
		})
	}
	f.assertNoUseCase(t)
}

func TestUpdateOrderItem_MismatchedItemIDs(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/users/7/orders/3/items/5", f.token(t, 7, user.RoleUser),
		`{"id":6,"productId":1,"quantity":3}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mismatched order item ids", decodeError(t, rec).Message)
	f.assertNoUseCase(t)
}

func TestUpdateOrderItem_ProductMismatch(t *testing.T) {
	f := newFixture(t)
	f.updateOrderItem.On("Handle", mock.Anything, mock.Anything).
		Return(nil, order.ErrProductMismatch).Once()

	rec := f.do(http.MethodPut, "/users/7/orders/3/items/5", f.token(t, 7, user.RoleUser),
		`{"id":5,"productId":2,"quantity":3}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mismatched product ids", decodeError(t, rec).Message)
}

func TestDeleteOrderItem(t *testing.T) {
	f := newFixture(t)
	f.deleteOrderItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteOrderItemCommand) bool {
		return cmd.ItemID().Int64() == 5 && cmd.OrderID().Int64() == 3
	})).Return(restoredItem(t, 5, 3, 1, 2), nil).Once()

	rec := f.do(http.MethodDelete, "/users/7/orders/3/items/5", f.token(t, 7, user.RoleUser), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5,"orderId":3,"productId":1,"quantity":2}`, rec.Body.String())
}

func TestGetOrder(t *testing.T) {
	f := newFixture(t)
	view := queries.OrderView{ID: mustID(t, 3), UserID: mustID(t, 7), Status: "active", Items: []queries.ItemView{}}
	f.getUserOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetUserOrderQuery) bool {
		return q.OrderID().Int64() == 3
	})).Return(view, nil).Once()
	f.getUserOrder.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderView{}, errs.NewObjectNotFoundError("order", int64(4))).Once()
	token := f.token(t, 7, user.RoleUser)

	rec := f.do(http.MethodGet, "/users/7/orders/3", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"userId":7,"status":"active","items":[]}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/users/7/orders/4", token, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "The order with the given id was not found", decodeError(t, rec).Message)
}

func TestListOrders_StatusFilter(t *testing.T) {
	f := newFixture(t)
	f.listUserOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListUserOrdersQuery) bool {
		return q.Status() != nil && *q.Status() == order.Complete
	})).Return([]queries.OrderView{{ID: mustID(t, 2), UserID: mustID(t, 7), Status: "complete"}}, nil).Once()
	token := f.token(t, 7, user.RoleUser)

	rec := f.do(http.MethodGet, "/users/7/orders?status=complete", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":2,"userId":7,"status":"complete"}]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/users/7/orders?status=shipped", token, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	f.listUserOrders.AssertNumberOfCalls(t, "Handle", 1)
}

func TestRegisterUser(t *testing.T) {
	f := newFixture(t)
	f.registerUser.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterUserCommand) bool {
		return cmd.Email() == "ada@example.com" && cmd.Password() == "secret1"
	})).Return(restoredUser(t, 7, user.RoleUser), nil).Once()

	rec := f.do(http.MethodPost, "/users", "",
		`{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":7,"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","role":"user"}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.registerUser.On("Handle", mock.Anything, mock.Anything).Return(nil, user.ErrEmailAlreadyTaken).Once()

	rec := f.do(http.MethodPost, "/users", "",
		`{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A user already exists with this email", decodeError(t, rec).Message)
}

func TestRegisterUser_InvalidBody(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{
		`{"email":"ada","firstName":"Ada","lastName":"Lovelace","password":"secret1"}`,
		`{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace"}`,
		`{"email":`,
		``,
	} {
		rec := f.do(http.MethodPost, "/users", "", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	f.assertNoUseCase(t)
}

func TestAuthenticateUser(t *testing.T) {
	f := newFixture(t)
	f.authenticateUser.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AuthenticateUserCommand) bool {
		return cmd.Password() == "secret1"
	})).Return("signed-token", nil).Once()
	f.authenticateUser.On("Handle", mock.Anything, mock.Anything).
		Return("", commands.ErrInvalidCredentials).Once()

	rec := f.do(http.MethodPost, "/users/authenticate", "", `{"email":"ada@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed-token"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/users/authenticate", "", `{"email":"ada@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "unauthorized", resp.Kind)
	assert.Equal(t, "Invalid email or password", resp.Message)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	f.updateUser.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateUserCommand) bool {
		return cmd.UserID().Int64() == 7 && cmd.FirstName() == "Ada"
	})).Return(restoredUser(t, 7, user.RoleUser), nil).Once()
	token := f.token(t, 7, user.RoleUser)

	rec := f.do(http.MethodPut, "/users/7", token, `{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPut, "/users/7", token, `{"id":8,"email":"ada@example.com","firstName":"Ada","lastName":"L"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mismatched user ids", decodeError(t, rec).Message)
	f.updateUser.AssertNumberOfCalls(t, "Handle", 1)
}

func TestDeleteUser_Admin(t *testing.T) {
	f := newFixture(t)
	f.deleteUser.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteUserCommand) bool {
		return cmd.UserID().Int64() == 7
	})).Return(restoredUser(t, 7, user.RoleUser), nil).Once()

	rec := f.do(http.MethodDelete, "/users/7", f.token(t, 1, user.RoleAdmin), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestListUsers_Admin(t *testing.T) {
	f := newFixture(t)
	f.listUsers.On("Handle", mock.Anything, mock.Anything).Return([]queries.UserView{
		{ID: mustID(t, 1), Email: "root@example.com", FirstName: "Root", LastName: "Admin", Role: "admin"},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/users", f.token(t, 1, user.RoleAdmin), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"email":"root@example.com","firstName":"Root","lastName":"Admin","role":"admin"}]`,
		rec.Body.String())
}
