package main

import (
	"net/http"

	"crm-web-server/internal/middleware"
	"crm-web-server/internal/security"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (a *application) registerRoutes(router chi.Router) {
	router.Use(middleware.AccessLog)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	authenticated := security.JWTMiddleware([]byte(a.cfg.JWT.SecretKey), a.jwtRepo, a.jwtService, a.cfg.Admin.AdminToken)
	public := a.publicLimiter.Handler

	setupAuthRoutes(router, a, authenticated)
	setupUserRoutes(router, a, authenticated)
	setupSharingRoutes(router, a, authenticated, public)
	setupCustomerUploadRoutes(router, a, authenticated, public)
	setupCustomerRoutes(router, a, authenticated)
	setupLeadRoutes(router, a, authenticated, public)
}

type middlewareFunc = func(http.Handler) http.Handler

func setupAuthRoutes(r chi.Router, a *application, authenticated middlewareFunc) {
	h := a.authHandler
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/me", h.GetCurrentUser)
			r.Post("/refresh", h.RefreshToken)
		})
		r.Group(func(r chi.Router) {
			r.Post("/", h.Login)
			r.Delete("/{token}", h.Logout)
		})
	})
}

func setupUserRoutes(r chi.Router, a *application, authenticated middlewareFunc) {
	h := a.userHandler
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/users", h.ListUsers)
			r.Route("/users/{uuid}", func(r chi.Router) {
				r.Get("/", h.GetUser)
				r.Put("/password", h.UpdatePassword)
			})
		})
	})
}

func setupSharingRoutes(r chi.Router, a *application, authenticated, public middlewareFunc) {
	h := a.sharingHandler
	r.Route("/api/sharing", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/create", h.CreateLink)
			r.Post("/document/signed-url", h.SignedURL)
			r.Get("/my-links", h.MyLinks)
			r.Post("/{linkId}/deactivate", h.Deactivate)
		})
		r.Group(func(r chi.Router) {
			r.Use(public)
			r.Get("/{linkId}", h.ViewLink)
			r.Post("/{linkId}/access", h.RecordAccess)
			r.Get("/{linkId}/download-all", h.DownloadAll)
		})
	})
}

func setupCustomerUploadRoutes(r chi.Router, a *application, authenticated, public middlewareFunc) {
	h := a.uploadHandler
	r.Route("/api/customer-upload", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/create", h.CreateLink)
			r.Get("/my-links", h.MyLinks)
			r.Post("/{linkId}/deactivate", h.Deactivate)
		})
		r.Group(func(r chi.Router) {
			r.Use(public)
			r.Get("/{linkId}", h.ResolveLink)
			r.Post("/{linkId}/upload", h.Upload)
		})
	})
}

func setupCustomerRoutes(r chi.Router, a *application, authenticated middlewareFunc) {
	h := a.customerHandler
	r.Route("/api/customers", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.ListCustomers)
		r.Post("/", h.CreateCustomer)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetCustomer)
			r.Put("/", h.UpdateCustomer)
			r.Delete("/", h.DeleteCustomer)
			r.Post("/documents", h.UploadDocument)

			r.Route("/documents/{documentId}", func(r chi.Router) {
				r.Delete("/", h.DeleteDocument)
				r.Patch("/", h.RenameDocument)
				r.Get("/url", h.DocumentURL)
			})
		})
	})
}

func setupLeadRoutes(r chi.Router, a *application, authenticated, public middlewareFunc) {
	h := a.leadHandler
	r.Route("/api/leads", func(r chi.Router) {
		r.With(public).Post("/", h.SubmitLead)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/", h.ListLeads)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetLead)
				r.Delete("/", h.DeleteLead)
				r.Put("/status", h.UpdateStatus)
				r.Post("/documents", h.UploadDocument)
				r.Post("/convert", h.ConvertLead)
			})
		})
	})
}
