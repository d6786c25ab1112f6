package service

import (
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/internal/checkout"
	"github.com/famoussince/storefront/internal/custom"
	"github.com/famoussince/storefront/internal/gate"
	"github.com/famoussince/storefront/internal/handlers"
	"github.com/famoussince/storefront/internal/homepage"
	"github.com/famoussince/storefront/internal/mockup"
	"github.com/famoussince/storefront/internal/session"
	"github.com/famoussince/storefront/internal/shipping"
	"github.com/famoussince/storefront/internal/stripe"
	"github.com/famoussince/storefront/internal/textfit"
	"github.com/famoussince/storefront/internal/upload"
	"github.com/famoussince/storefront/storage"
	"github.com/labstack/echo/v4"
)

type Service struct {
	storage  *storage.Storage
	config   *Config
	sessions *session.Manager
	gate     *gate.Gate

	products    *handlers.ProductHandler
	carts       *handlers.CartHandler
	checkout    *handlers.CheckoutHandler
	custom      *handlers.CustomHandler
	homepage    *handlers.HomepageHandler
	payments    *handlers.PaymentHandler
	connect     *handlers.ConnectHandler
	siteConfig  *handlers.SiteConfigHandler
	waitlist    *handlers.WaitlistHandler
	uploads     *handlers.UploadHandler
	adminAuth   *handlers.AdminAuthHandler
	adminProds  *handlers.AdminProductHandler
	adminTypes  *handlers.AdminProductTypeHandler
	adminWords  *handlers.AdminExceptionHandler
	adminSlots  *handlers.AdminHomepageHandler
	adminOrders *handlers.AdminOrderHandler
}

func New(store *storage.Storage, config *Config) (*Service, error) {
	queries := store.Queries

	measurer, err := textfit.NewFontMeasurerFromFile(config.Assets.FontPath)
	if err != nil {
		return nil, err
	}
	renderer := mockup.NewRenderer(measurer)

	var uploader upload.Uploader
	if config.Cloudinary.URL != "" {
		cld, err := upload.NewCloudinary(config.Cloudinary.URL)
		if err != nil {
			return nil, err
		}
		uploader = cld
	} else {
		slog.Warn("CLOUDINARY_URL not set, storing uploads on local disk")
		uploader = upload.NewDisk(config.Upload.Dir, config.BaseURL+"/public/uploads")
	}

	verifier := shipping.NewVerifier(config.EasyPost.APIKey)
	if verifier.IsUsingMockData() {
		slog.Warn("EASYPOST_API_KEY not set, address verification disabled")
	}

	stripeClient := stripe.NewClient(config.Stripe.SecretKey, config.Stripe.HostingPriceID)
	sessions := session.NewManager(config.Session.Secret)
	siteGate := gate.New(queries, stripeClient)

	cartStore := cart.NewStore(queries)
	flowStore := checkout.NewFlowStore(queries)
	catalog := handlers.NewCatalog(queries)

	slotStore := homepage.NewStore(store.DB(), queries)
	selector := homepage.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano())))

	pipeline := custom.NewPipeline(store.DB(), queries, renderer, uploader)

	return &Service{
		storage:  store,
		config:   config,
		sessions: sessions,
		gate:     siteGate,

		products:    handlers.NewProductHandler(queries),
		carts:       handlers.NewCartHandler(cartStore, sessions, catalog),
		checkout:    handlers.NewCheckoutHandler(cartStore, flowStore, sessions, verifier, stripeClient, queries),
		custom:      handlers.NewCustomHandler(pipeline, renderer, measurer, queries, config.Assets.ImageDir),
		homepage:    handlers.NewHomepageHandler(slotStore, selector, queries),
		payments:    handlers.NewPaymentHandler(stripeClient, queries, cartStore, config.Stripe.WebhookSecret),
		connect:     handlers.NewConnectHandler(stripeClient, queries, config.BaseURL),
		siteConfig:  handlers.NewSiteConfigHandler(siteGate),
		waitlist:    handlers.NewWaitlistHandler(queries),
		uploads:     handlers.NewUploadHandler(uploader, config.Upload.MaxSize),
		adminAuth:   handlers.NewAdminAuthHandler(sessions, config.Admin.Username, config.Admin.Password),
		adminProds:  handlers.NewAdminProductHandler(store.DB(), queries),
		adminTypes:  handlers.NewAdminProductTypeHandler(store.DB(), queries),
		adminWords:  handlers.NewAdminExceptionHandler(queries),
		adminSlots:  handlers.NewAdminHomepageHandler(slotStore, queries),
		adminOrders: handlers.NewAdminOrderHandler(queries, config.BaseURL),
	}, nil
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.Static("/public", "public")

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/coming-soon", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "coming soon",
			"message": "Famous Since is almost ready. Join the waitlist.",
		})
	})

	// Webhooks skip the deployment gate so payment events always land.
	e.POST("/api/webhooks/stripe", s.payments.HandleWebhook)

	// Waitlist stays open while the site is gated.
	e.POST("/api/waitlist", s.waitlist.Join)

	// Storefront, behind the deployment gate.
	shop := e.Group("", s.gate.Middleware())

	shop.GET("/api/homepage", s.homepage.Get)
	shop.GET("/api/products", s.products.ListProducts)
	shop.GET("/api/products/:id", s.products.GetProduct)

	shop.GET("/api/cart", s.carts.GetCart)
	shop.POST("/api/cart/items", s.carts.AddItem)
	shop.PUT("/api/cart/items/:id", s.carts.UpdateItem)
	shop.DELETE("/api/cart/items/:id", s.carts.RemoveItem)
	shop.DELETE("/api/cart", s.carts.ClearCart)

	shop.POST("/api/custom/fit", s.custom.Fit)
	shop.POST("/api/custom/preview", s.custom.Preview)
	shop.POST("/api/custom/designs", s.custom.CreateDesign)

	shop.GET("/api/checkout", s.checkout.GetState)
	shop.POST("/api/checkout/contact", s.checkout.SubmitContact)
	shop.POST("/api/checkout/shipping", s.checkout.SubmitShipping)
	shop.GET("/api/checkout/totals", s.checkout.GetTotals)
	shop.POST("/api/checkout/submit", s.checkout.Submit)

	// Admin login is outside the guarded group.
	e.POST("/api/admin/login", s.adminAuth.Login)
	e.POST("/api/admin/logout", s.adminAuth.Logout)
	e.GET("/api/admin/me", s.adminAuth.Me)

	admin := e.Group("/api/admin", s.sessions.RequireAdmin())

	admin.GET("/products", s.adminProds.List)
	admin.POST("/products", s.adminProds.Create)
	admin.PUT("/products/:id", s.adminProds.Update)
	admin.DELETE("/products/:id", s.adminProds.Delete)

	admin.GET("/product-types", s.adminTypes.List)
	admin.POST("/product-types", s.adminTypes.Create)
	admin.PUT("/product-types/:id", s.adminTypes.Update)
	admin.DELETE("/product-types/:id", s.adminTypes.Delete)

	admin.GET("/exceptions", s.adminWords.List)
	admin.POST("/exceptions", s.adminWords.Create)
	admin.DELETE("/exceptions/:id", s.adminWords.Delete)

	admin.GET("/homepage", s.adminSlots.Get)
	admin.PUT("/homepage", s.adminSlots.Save)

	admin.GET("/waitlist", s.waitlist.List)

	admin.GET("/orders", s.adminOrders.List)
	admin.GET("/orders/:id", s.adminOrders.Get)
	admin.PUT("/orders/:id/status", s.adminOrders.UpdateStatus)
	admin.GET("/orders/:id/packing-slip", s.adminOrders.PackingSlip)

	admin.POST("/upload", s.uploads.Upload)

	admin.POST("/connect/account", s.connect.CreateAccount)
	admin.POST("/connect/link", s.connect.CreateLink)
	admin.GET("/connect/status", s.connect.Status)
	admin.DELETE("/connect/account", s.connect.Delete)
	admin.DELETE("/connect/account/local", s.connect.Clear)

	admin.POST("/subscription", s.payments.CreateSubscription)

	admin.GET("/site-config", s.siteConfig.Get)
	admin.GET("/site-config/status", s.siteConfig.CheckStatus)
	admin.PUT("/site-config", s.siteConfig.Update)
}
