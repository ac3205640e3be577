package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/neutralpress/member-service/internal/http/handler"
	appmiddleware "github.com/neutralpress/member-service/internal/http/middleware"
	"github.com/neutralpress/member-service/internal/observability"
	"github.com/neutralpress/member-service/internal/security"
)

type Dependencies struct {
	Logger        *slog.Logger
	JWTManager    *security.JWTManager
	MemberHandler *handler.MemberHandler
	HealthHandler *handler.HealthHandler
}

func New(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(observability.RequestLogger(dep.Logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", dep.HealthHandler.Healthz)

	r.Route("/member", func(r chi.Router) {
		r.Post("/signup", dep.MemberHandler.Signup)
		r.Post("/login", dep.MemberHandler.Login)
		r.Post("/send-password-code", dep.MemberHandler.SendPasswordResetCode)
		r.Post("/verify-code", dep.MemberHandler.VerifyCode)
		r.Post("/reset-password", dep.MemberHandler.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireAuth(dep.JWTManager))
			r.Post("/update-password", dep.MemberHandler.UpdatePassword)
		})
	})

	return r
}
