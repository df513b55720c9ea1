package http

import (
	"net/http"

	"ordering/internal/adapters/in/http/schema"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /users.
func (s *Server) RegisterUser(c echo.Context) error {
	var body userInput
	if err := s.decode(c, schema.UserInput, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(body.Email, body.FirstName, body.LastName, body.Password)
	if err != nil {
		return err
	}

	created, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newUserResponse(created))
}

// AuthenticateUser handles POST /users/authenticate.
func (s *Server) AuthenticateUser(c echo.Context) error {
	var body credentials
	if err := s.decode(c, schema.Credentials, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAuthenticateUserCommand(body.Email, body.Password)
	if err != nil {
		return err
	}

	token, err := s.handlers.AuthenticateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// ListUsers handles GET /users. Admin only.
func (s *Server) ListUsers(c echo.Context) error {
	if err := s.admin(c); err != nil {
		return err
	}

	users, err := s.handlers.ListUsers.Handle(c.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return err
	}

	response := make([]userResponse, 0, len(users))
	for _, u := range users {
		response = append(response, userResponseFromView(u))
	}
	return c.JSON(http.StatusOK, response)
}

// GetUser handles GET /users/:userId.
func (s *Server) GetUser(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponseFromView(view))
}

// UpdateUser handles PUT /users/:userId.
func (s *Server) UpdateUser(c echo.Context) error {
	userID, err := s.owner(c)
	if err != nil {
		return err
	}

	var body userUpdate
	if err = s.decode(c, schema.UserUpdate, &body); err != nil {
		return err
	}
	if body.ID != nil && *body.ID != userID.Int64() {
		return commands.ErrMismatchedUserIDs
	}

	cmd, err := commands.NewUpdateUserCommand(userID, body.Email, body.FirstName, body.LastName)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(updated))
}

// DeleteUser handles DELETE /users/:userId. Admin only; the user is soft-deleted.
func (s *Server) DeleteUser(c echo.Context) error {
	if err := s.admin(c); err != nil {
		return err
	}

	userID, err := bindID(c, "userId", "user")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return err
	}

	deleted, err := s.handlers.DeleteUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(deleted))
}
