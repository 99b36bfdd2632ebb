package routes

import (
	"net/http"

	"mercato/admins"
	"mercato/auth"
	"mercato/cart"
	"mercato/categories"
	"mercato/crud"
	"mercato/discounts"
	"mercato/middleware"
	"mercato/orders"
	"mercato/products"
	"mercato/ratelim"
	"mercato/reviews"
	"mercato/sliders"
	"mercato/users"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	// filemgr stores everything under static/uploads/<entity>/
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/phone", rl.Limit(auth.HandlePhoneInput))
	router.POST("/api/auth/register", rl.Limit(auth.CompleteRegistration))
	router.POST("/api/auth/login", rl.Limit(auth.LoginWithPassword))
	router.POST("/api/auth/login/code", rl.Limit(auth.LoginWithCode))
	router.POST("/api/auth/code/resend", rl.Limit(auth.ResendVerificationCode))
	router.POST("/api/auth/code/request", rl.Limit(auth.RequestLoginCode))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:productid", products.GetProduct)
	router.POST("/api/products", rl.Limit(middleware.AuthenticateAdmin(products.CreateProduct)))
	router.PUT("/api/products/:productid", middleware.AuthenticateAdmin(products.UpdateProduct))
	router.DELETE("/api/products/:productid", middleware.AuthenticateAdmin(products.DeleteProduct))
}

func AddCategoryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/categories", categories.GetCategories)
	router.GET("/api/categories/:categoryid", categories.GetCategory)
	router.GET("/api/category/slug/:slug", categories.GetCategoryBySlug)
	router.POST("/api/categories", rl.Limit(middleware.AuthenticateAdmin(categories.CreateCategory)))
	router.PUT("/api/categories/:categoryid", middleware.AuthenticateAdmin(categories.UpdateCategory))
	router.POST("/api/categories/:categoryid/image", rl.Limit(middleware.AuthenticateAdmin(categories.UploadImage)))
	router.DELETE("/api/categories/:categoryid", middleware.AuthenticateAdmin(categories.DeleteCategory))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart/items", rl.Limit(middleware.Authenticate(cart.AddToCart)))
	router.DELETE("/api/cart/items/:productid", middleware.Authenticate(cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(middleware.Authenticate(orders.CreateOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))
	router.GET("/api/admin/orders", middleware.AuthenticateAdmin(orders.GetAllOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(orders.PrintInvoice))
	router.PUT("/api/orders/:orderid/status", middleware.AuthenticateAdmin(orders.UpdateOrderStatus))
	router.DELETE("/api/orders/:orderid", middleware.AuthenticateAdmin(orders.DeleteOrder))
	router.GET("/ws/orders", middleware.AuthenticateAdmin(orders.StreamOrders))
}

func AddReviewRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products/:productid/reviews", reviews.GetReviews)
	router.GET("/api/reviews/:reviewid", reviews.GetReview)
	router.POST("/api/reviews", rl.Limit(middleware.Authenticate(reviews.CreateReview)))
	router.DELETE("/api/reviews/:reviewid", middleware.Authenticate(reviews.DeleteReview))
}

func AddDiscountRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/discount/check/:code", rl.Limit(middleware.Authenticate(discounts.CheckDiscount)))
	router.GET("/api/discounts", middleware.AuthenticateAdmin(discounts.GetDiscounts))
	router.GET("/api/discounts/:discountid", middleware.AuthenticateAdmin(discounts.GetDiscount))
	router.POST("/api/discounts", middleware.AuthenticateAdmin(discounts.CreateDiscount))
	router.PUT("/api/discounts/:discountid", middleware.AuthenticateAdmin(discounts.UpdateDiscount))
	router.DELETE("/api/discounts/:discountid", middleware.AuthenticateAdmin(discounts.DeleteDiscount))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/users", middleware.AuthenticateAdmin(users.GetUsers))
	router.GET("/api/users/:userid", middleware.Authenticate(users.GetUser))
	router.PUT("/api/users/:userid", middleware.Authenticate(users.UpdateUser))
	router.DELETE("/api/users/:userid", middleware.Authenticate(users.DeleteUser))
	router.POST("/api/users/:userid/picture", rl.Limit(middleware.Authenticate(users.UploadProfilePicture)))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/admin/login", rl.Limit(admins.Login))
	router.POST("/api/admin/accounts", middleware.AuthenticateAdmin(admins.CreateAdmin))
	router.GET("/api/admin/accounts", middleware.AuthenticateAdmin(admins.GetAdmins))
	router.GET("/api/admin/accounts/:adminid", middleware.AuthenticateAdmin(admins.GetAdmin))
	router.PUT("/api/admin/accounts/:adminid", middleware.AuthenticateAdmin(admins.UpdateAdmin))
	router.DELETE("/api/admin/accounts/:adminid", middleware.AuthenticateAdmin(admins.DeleteAdmin))
}

func AddPaymentRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/payments", rl.Limit(middleware.Authenticate(crud.Payments.Create)))
	router.GET("/api/payments", middleware.AuthenticateAdmin(crud.Payments.List))
	router.GET("/api/payments/:id", middleware.Authenticate(crud.Payments.Get))
	router.PUT("/api/payments/:id", middleware.AuthenticateAdmin(crud.Payments.Update))
	router.DELETE("/api/payments/:id", middleware.AuthenticateAdmin(crud.Payments.Delete))
}

func AddShippingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/shipping", rl.Limit(middleware.Authenticate(crud.Shippings.Create)))
	router.GET("/api/shipping", middleware.AuthenticateAdmin(crud.Shippings.List))
	router.GET("/api/shipping/:id", middleware.Authenticate(crud.Shippings.Get))
	router.PUT("/api/shipping/:id", middleware.Authenticate(crud.Shippings.Update))
	router.DELETE("/api/shipping/:id", middleware.Authenticate(crud.Shippings.Delete))
}

func AddSliderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/sliders", crud.Sliders.List)
	router.GET("/api/sliders/:id", crud.Sliders.Get)
	router.POST("/api/sliders", middleware.AuthenticateAdmin(crud.Sliders.Create))
	router.PUT("/api/sliders/:id", middleware.AuthenticateAdmin(crud.Sliders.Update))
	router.POST("/api/sliders/:id/image", rl.Limit(middleware.AuthenticateAdmin(sliders.UploadImage)))
	router.DELETE("/api/sliders/:id", middleware.AuthenticateAdmin(crud.Sliders.Delete))
}

func AddInventoryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/inventory", middleware.AuthenticateAdmin(crud.Inventories.Create))
	router.GET("/api/inventory", middleware.AuthenticateAdmin(crud.Inventories.List))
	router.GET("/api/inventory/:id", middleware.AuthenticateAdmin(crud.Inventories.Get))
	router.PUT("/api/inventory/:id", middleware.AuthenticateAdmin(crud.Inventories.Update))
	router.DELETE("/api/inventory/:id", middleware.AuthenticateAdmin(crud.Inventories.Delete))
}

func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter) {
	AddAuthRoutes(router, rl)
	AddAdminRoutes(router, rl)
	AddProductRoutes(router, rl)
	AddCategoryRoutes(router, rl)
	AddCartRoutes(router, rl)
	AddOrderRoutes(router, rl)
	AddReviewRoutes(router, rl)
	AddDiscountRoutes(router, rl)
	AddUserRoutes(router, rl)
	AddPaymentRoutes(router, rl)
	AddShippingRoutes(router, rl)
	AddSliderRoutes(router, rl)
	AddInventoryRoutes(router, rl)
	AddStaticRoutes(router)
}
