package http

import (
	"errors"
	"net/http"

	"furnshop/internal/domain"
	"furnshop/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders    *services.OrderService
	catalog   *services.CatalogService
	users     *services.UserService
	jwtSecret []byte
}

func NewHandler(orders *services.OrderService, catalog *services.CatalogService, users *services.UserService, jwtSecret []byte) *Handler {
	return &Handler{
		orders:    orders,
		catalog:   catalog,
		users:     users,
		jwtSecret: jwtSecret,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	admin := RequireRoles(domain.RoleAdmin)
	staff := RequireRoles(domain.RoleAdmin, domain.RoleSales)

	products := r.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("", h.RequireAuth, admin, h.CreateProduct)
		products.PUT("/:id", h.RequireAuth, admin, h.UpdateProduct)
		products.DELETE("/:id", h.RequireAuth, admin, h.DeleteProduct)
	}

	orders := r.Group("/orders", h.RequireAuth)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", admin, h.ListOrders)
		orders.GET("/myorders", h.ListMyOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id/approve", admin, h.ApproveOrder)
		orders.PUT("/:id/pay", staff, h.MarkOrderPaid)
		orders.PUT("/:id/deliver", staff, h.MarkOrderDelivered)
		orders.DELETE("/:id", admin, h.DeleteOrder)
	}

	users := r.Group("/users")
	{
		users.POST("", h.Register)
		users.POST("/login", h.Login)
		users.GET("", h.RequireAuth, admin, h.ListUsers)
		users.POST("/admin", h.RequireAuth, admin, h.AdminCreateUser)
		users.GET("/sales", h.RequireAuth, staff, h.ListSalesUsers)
		users.GET("/profile", h.RequireAuth, h.Profile)
		users.DELETE("/:id", h.RequireAuth, admin, h.DeleteUser)
	}
}

// statusFor maps the domain error taxonomy onto HTTP status codes in one
// place. Internal detail never leaves the process.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrProtectedAdmin):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
