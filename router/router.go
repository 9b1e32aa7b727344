package router

import (
	"go-auth-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-auth-api/docs"
)

func NewRouter(userHandler *handler.UserHandler, authGuard *handler.AuthMiddleware) http.Handler {
	mux := http.NewServeMux()

	// Public operations.
	mux.Handle("POST /users/register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("POST /users/login", handler.ErrorHandlingMiddleware(userHandler.Login))
	mux.Handle("POST /users/verify-email", handler.ErrorHandlingMiddleware(userHandler.VerifyEmail))
	mux.Handle("POST /users/forgot-password", handler.ErrorHandlingMiddleware(userHandler.ForgotPassword))
	mux.Handle("POST /users/verify-forgot-password", handler.ErrorHandlingMiddleware(userHandler.VerifyForgotPassword))
	mux.Handle("POST /users/reset-password", handler.ErrorHandlingMiddleware(userHandler.ResetPassword))

	// Protected operations behind the access guard.
	mux.Handle("POST /users/logout", authGuard.RequireAccessToken(handler.ErrorHandlingMiddleware(userHandler.Logout)))
	mux.Handle("POST /users/resend-verify-email", authGuard.RequireAccessToken(handler.ErrorHandlingMiddleware(userHandler.ResendVerifyEmail)))
	mux.Handle("GET /users/get-profile", authGuard.RequireAccessToken(handler.ErrorHandlingMiddleware(userHandler.GetProfile)))

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}
