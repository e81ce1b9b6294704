package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"kaikari-xpress/internal/cart"
	"kaikari-xpress/internal/domain"
	"kaikari-xpress/internal/geocode"
	"kaikari-xpress/internal/storage"
)

// Deps carries the services the handlers depend on.
type Deps struct {
	Catalog  catalogService
	Cart     cartManager
	Storage  appStorage
	Geocoder geocode.Reverser
}

type catalogService interface {
	Categories() []domain.Category
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
}

type cartManager interface {
	AddToCart(ctx context.Context, product domain.Product) error
	UpdateQuantity(ctx context.Context, productID int, dir cart.Direction) error
	RemoveFromCart(ctx context.Context, productID int) error
	ClearCart(ctx context.Context) error
	PlaceOrder(ctx context.Context, totalPaise int64) (string, error)
	Items() []domain.CartItem
	Orders() []domain.Order
	CartCount() int
	CartTotal() int64
}

type appStorage interface {
	Profile(ctx context.Context) *domain.UserProfile
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	Addresses(ctx context.Context) []domain.Address
	AddAddress(ctx context.Context, address domain.Address) (domain.Address, error)
	UpdateAddress(ctx context.Context, id string, patch storage.AddressPatch) error
	DeleteAddress(ctx context.Context, id string) error
	DefaultAddress(ctx context.Context) *domain.Address
	SetDefaultAddress(ctx context.Context, id string) error
	AddOrder(ctx context.Context, order domain.PastOrder) (domain.PastOrder, error)
	UpdateOrder(ctx context.Context, id string, patch storage.OrderPatch) error
	Orders(ctx context.Context) []domain.PastOrder
	OrderByID(ctx context.Context, id string) *domain.PastOrder
	ClearAllData(ctx context.Context) error
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/catalog/categories", listCategoriesHandler(deps.Catalog))
	router.GET("/catalog/products", listProductsHandler(deps.Catalog))
	router.GET("/catalog/products/:id", getProductHandler(deps.Catalog))

	router.GET("/cart", getCartHandler(deps.Cart))
	router.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
	router.POST("/cart/items/:id/quantity", updateCartQuantityHandler(deps.Cart))
	router.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart))
	router.DELETE("/cart", clearCartHandler(deps.Cart))

	router.POST("/checkout", checkoutHandler(deps.Cart, deps.Storage))
	router.GET("/orders", sessionOrdersHandler(deps.Cart))

	router.GET("/profile", getProfileHandler(deps.Storage))
	router.PUT("/profile", updateProfileHandler(deps.Storage))
	router.DELETE("/appdata", clearAppDataHandler(deps.Storage))

	router.GET("/addresses", listAddressesHandler(deps.Storage))
	router.POST("/addresses", addAddressHandler(deps.Storage))
	router.GET("/addresses/default", defaultAddressHandler(deps.Storage))
	router.PATCH("/addresses/:id", updateAddressHandler(deps.Storage))
	router.DELETE("/addresses/:id", deleteAddressHandler(deps.Storage))
	router.POST("/addresses/:id/default", setDefaultAddressHandler(deps.Storage))

	router.GET("/past-orders", listPastOrdersHandler(deps.Storage))
	router.GET("/past-orders/:id", getPastOrderHandler(deps.Storage))
	router.PATCH("/past-orders/:id", updatePastOrderHandler(deps.Storage))

	if deps.Geocoder != nil {
		router.GET("/geocode/reverse", reverseGeocodeHandler(deps.Geocoder))
	}

	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = allowedOrigins
	return cfg
}
