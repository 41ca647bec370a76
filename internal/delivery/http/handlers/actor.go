package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/translationbridge/request-service/internal/domain"
)

// Identity headers set by the authentication gateway in front of this
// service. An absent user id means the caller is anonymous.
const (
	userIDHeader   = "x-auth-user-id"
	userMailHeader = "x-auth-user-email"
	userNameHeader = "x-auth-user-name"
)

func actorFromRequest(c echo.Context) domain.Actor {
	header := c.Request().Header
	userID := header.Get(userIDHeader)
	return domain.Actor{
		UserID:        userID,
		Email:         header.Get(userMailHeader),
		Username:      header.Get(userNameHeader),
		Authenticated: userID != "",
	}
}
