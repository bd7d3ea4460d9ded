package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carriedev/hazellab-backend/api/controllers"
	"github.com/carriedev/hazellab-backend/api/middleware"
	"github.com/carriedev/hazellab-backend/internal/auth"
	"github.com/carriedev/hazellab-backend/internal/blogs"
	"github.com/carriedev/hazellab-backend/internal/cart"
	"github.com/carriedev/hazellab-backend/internal/categories"
	"github.com/carriedev/hazellab-backend/internal/products"
	"github.com/carriedev/hazellab-backend/internal/users"
	"github.com/carriedev/hazellab-backend/pkg/config"
	"github.com/carriedev/hazellab-backend/pkg/db"
	"github.com/carriedev/hazellab-backend/pkg/logger"
	"github.com/carriedev/hazellab-backend/pkg/metrics"
	"github.com/carriedev/hazellab-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        *redis.Client
	Registry     *prometheus.Registry
	HTTPMetrics  *metrics.HTTPMetrics
	AuthService  auth.Service
	UserService  users.Service
	ProductSvc   products.Service
	CategorySvc  categories.Service
	CartService  cart.Service
	BlogService  blogs.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
	})

	r.Route("/api/usuarios", func(r chi.Router) {
		r.Post("/", controllers.CreateUser(deps.UserService, logg))
		r.Get("/", controllers.ListUsers(deps.UserService, logg))
		r.Get("/email/{email}", controllers.GetUserByEmail(deps.UserService, logg))
		r.Get("/buscar/nombre/{username}", controllers.SearchUsersByUsername(deps.UserService, logg))
		r.Get("/buscar/rol/{role}", controllers.SearchUsersByRole(deps.UserService, logg))
		r.Get("/buscar/estado/{status}", controllers.SearchUsersByStatus(deps.UserService, logg))
		r.Get("/{id}", controllers.GetUser(deps.UserService, logg))
		r.Put("/{id}", controllers.UpdateUser(deps.UserService, logg))
		r.Delete("/{id}", controllers.DeleteUser(deps.UserService, logg))
	})

	r.Route("/api/productos", func(r chi.Router) {
		r.Post("/", controllers.CreateProduct(deps.ProductSvc, logg))
		r.Get("/", controllers.ListProducts(deps.ProductSvc, logg))
		r.Get("/destacados", controllers.ListFeaturedProducts(deps.ProductSvc, logg))
		r.Get("/stock-bajo", controllers.ListLowStockProducts(deps.ProductSvc, logg))
		r.Route("/buscar", func(r chi.Router) {
			r.Get("/nombre/{nombre}", controllers.SearchProductsByName(deps.ProductSvc, logg))
			r.Get("/categoria/{categoriaId}", controllers.SearchProductsByCategory(deps.ProductSvc, logg))
			r.Get("/estado", controllers.SearchProductsByStatus(deps.ProductSvc, logg))
			r.Get("/avanzada", controllers.AdvancedProductSearch(deps.ProductSvc, logg))
		})
		r.Get("/{id}", controllers.GetProduct(deps.ProductSvc, logg))
		r.Put("/{id}", controllers.UpdateProduct(deps.ProductSvc, logg))
		r.Delete("/{id}", controllers.DeleteProduct(deps.ProductSvc, logg))
		r.Patch("/{id}/desactivar", controllers.DeactivateProduct(deps.ProductSvc, logg))
		r.Put("/{id}/imagen", controllers.UpdateProductImage(deps.ProductSvc, logg))
	})

	r.Route("/api/categorias", func(r chi.Router) {
		r.Post("/", controllers.CreateCategory(deps.CategorySvc, logg))
		r.Get("/", controllers.ListCategories(deps.CategorySvc, logg))
		r.Get("/{id}", controllers.GetCategory(deps.CategorySvc, logg))
		r.Put("/{id}", controllers.UpdateCategory(deps.CategorySvc, logg))
		r.Delete("/{id}", controllers.DeleteCategory(deps.CategorySvc, logg))
	})

	r.Route("/api/itemscarrito", func(r chi.Router) {
		r.Post("/", controllers.CreateCartItem(deps.CartService, logg))
		r.Get("/", controllers.ListCartItems(deps.CartService, logg))
		r.Get("/usuario/{usuarioId}", controllers.ListCartItemsByUser(deps.CartService, logg))
		r.Get("/{id}", controllers.GetCartItem(deps.CartService, logg))
		r.Put("/{id}", controllers.UpdateCartItem(deps.CartService, logg))
		r.Put("/{id}/cantidad", controllers.UpdateCartItemQuantity(deps.CartService, logg))
		r.Delete("/{id}", controllers.DeleteCartItem(deps.CartService, logg))
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Post("/", controllers.CreateBlog(deps.BlogService, logg))
		r.Get("/", controllers.ListBlogs(deps.BlogService, logg))
		r.Get("/{id}", controllers.GetBlog(deps.BlogService, logg))
		r.Put("/{id}", controllers.UpdateBlog(deps.BlogService, logg))
		r.Delete("/{id}", controllers.DeleteBlog(deps.BlogService, logg))
	})

	return r
}
