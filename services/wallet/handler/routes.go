package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/averros/digiwallet/internal/pkg/middleware"
	"github.com/averros/digiwallet/internal/pkg/models"
	fraudhttp "github.com/averros/digiwallet/services/fraud/handler/http"
	wallethttp "github.com/averros/digiwallet/services/wallet/handler/http"
)

// Handler coordinates the HTTP handlers for the wallet service
type Handler struct {
	walletHandler *wallethttp.WalletHandler
	fraudHandler  *fraudhttp.FraudHandler
	cfg           *models.Config
	adminAPIKey   string
}

// NewHandler creates and initializes all handlers
func NewHandler(
	walletHandler *wallethttp.WalletHandler,
	fraudHandler *fraudhttp.FraudHandler,
	cfg *models.Config,
	adminAPIKey string,
) *Handler {
	return &Handler{
		walletHandler: walletHandler,
		fraudHandler:  fraudHandler,
		cfg:           cfg,
		adminAPIKey:   adminAPIKey,
	}
}

// RegisterRoutes registers all wallet service routes.
//
// Account routes authenticate with a bearer token issued by the external
// identity provider; admin routes authenticate with the service API key.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	account := api.Group("/wallet", middleware.JWTAuthMiddleware(h.cfg.JWT))
	account.GET("", h.walletHandler.GetWallet)
	account.POST("/deposit", h.walletHandler.Deposit)
	account.POST("/withdraw", h.walletHandler.Withdraw)
	account.POST("/transfer", h.walletHandler.Transfer)
	account.GET("/transactions", h.walletHandler.ListTransactions)

	admin := api.Group("/admin", middleware.ValidateAPIKey(h.adminAPIKey))
	admin.POST("/wallets", h.walletHandler.ProvisionWallet)
	admin.POST("/fraud/rescan", h.fraudHandler.Rescan)
	admin.GET("/transactions/flagged", h.fraudHandler.ListFlagged)
}
