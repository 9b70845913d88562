package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rgalimov/fortuna/internal/handlers/admin"
	"github.com/rgalimov/fortuna/internal/handlers/attempts"
	"github.com/rgalimov/fortuna/internal/handlers/purchase"
	"github.com/rgalimov/fortuna/internal/handlers/spin"
	"github.com/rgalimov/fortuna/internal/service"
)

type Handlers struct {
	attempts *attempts.AttemptsHandler
	purchase *purchase.PurchaseHandler
	spin     *spin.SpinHandler
	admin    *admin.AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		attempts: attempts.New(s.LedgerService),
		purchase: purchase.New(s.TransactionService, s.ApprovalService, s.MethodService),
		spin:     spin.New(s.SpinService),
		admin:    admin.New(s.ApprovalService, s.MethodService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) {
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Get("/attempts", h.attempts.GetAttempts)
			r.Post("/purchase", h.purchase.CreatePurchase)
			r.Post("/purchase/receipt", h.purchase.SubmitReceipt)
			r.Get("/purchases", h.purchase.GetPurchases)
			r.Post("/spin", h.spin.Spin)
			r.Get("/prizes", h.spin.GetPrizes)
			r.Post("/prizes/claim", h.spin.ClaimPrize)
		})

		r.Get("/payment-methods", h.purchase.GetPaymentMethods)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/transactions/{id}/approve", h.admin.ApproveTransaction)
			r.Post("/transactions/{id}/decline", h.admin.DeclineTransaction)
			r.Route("/payment-methods", func(r chi.Router) {
				r.Post("/", h.admin.CreateMethod)
				r.Put("/{id}", h.admin.UpdateMethod)
				r.Post("/{id}/toggle", h.admin.ToggleMethod)
				r.Delete("/{id}", h.admin.DeleteMethod)
			})
		})
	})
}
