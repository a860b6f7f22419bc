package routes

import (
	"net/http"

	"nutriva/account"
	"nutriva/admin"
	"nutriva/auth"
	"nutriva/cart"
	"nutriva/contact"
	"nutriva/coupon"
	"nutriva/invoice"
	"nutriva/journal"
	"nutriva/middleware"
	"nutriva/orders"
	"nutriva/products"
	"nutriva/ratelim"
	"nutriva/rewards"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
	router.POST("/api/auth/password/forgot", rl.Limit(auth.RequestPasswordReset))
	router.POST("/api/auth/password/reset", rl.Limit(auth.ResetPassword))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:productid", products.GetProduct)
	router.POST("/api/products", middleware.Authenticate(middleware.RequireAdmin(products.CreateProduct)))
	router.PUT("/api/products/:productid", middleware.Authenticate(middleware.RequireAdmin(products.UpdateProduct)))
	router.DELETE("/api/products/:productid", middleware.Authenticate(middleware.RequireAdmin(products.DeleteProduct)))
	router.POST("/api/products/:productid/image", middleware.Authenticate(middleware.RequireAdmin(products.UploadProductImage)))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart", middleware.Authenticate(cart.AddToCart))
	router.PUT("/api/cart/:productid", middleware.Authenticate(cart.UpdateCartItem))
	router.DELETE("/api/cart/:productid", middleware.Authenticate(cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.ClearCart))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/checkout/coupon/validate", rl.Limit(middleware.Authenticate(coupon.ValidateCoupon)))
	router.GET("/api/checkout/selection", middleware.Authenticate(coupon.GetSelection))
	router.PUT("/api/checkout/selection", middleware.Authenticate(coupon.ApplySelection))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(middleware.Authenticate(orders.PlaceOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(invoice.DownloadInvoice))
	router.PUT("/api/orders/:orderid/status", middleware.Authenticate(middleware.RequireAdmin(orders.UpdateOrderStatus)))
}

func AddAccountRoutes(router *httprouter.Router) {
	router.GET("/api/account/addresses", middleware.Authenticate(account.GetAddresses))
	router.POST("/api/account/addresses", middleware.Authenticate(account.CreateAddress))
	router.PUT("/api/account/addresses/:addressid", middleware.Authenticate(account.UpdateAddress))
	router.DELETE("/api/account/addresses/:addressid", middleware.Authenticate(account.DeleteAddress))

	router.GET("/api/account/payment-methods", middleware.Authenticate(account.GetPaymentMethods))
	router.POST("/api/account/payment-methods", middleware.Authenticate(account.CreatePaymentMethod))
	router.DELETE("/api/account/payment-methods/:paymentid", middleware.Authenticate(account.DeletePaymentMethod))

	router.GET("/api/account/rewards", middleware.Authenticate(rewards.GetBalance))
}

func AddJournalRoutes(router *httprouter.Router) {
	router.GET("/api/journal", journal.GetPosts)
	router.GET("/api/journal/:slug", journal.GetPost)
	router.POST("/api/journal", middleware.Authenticate(middleware.RequireAdmin(journal.CreatePost)))
	router.PUT("/api/journal/post/:postid", middleware.Authenticate(middleware.RequireAdmin(journal.UpdatePost)))
	router.DELETE("/api/journal/post/:postid", middleware.Authenticate(middleware.RequireAdmin(journal.DeletePost)))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.SubmitContact))
	router.GET("/api/admin/contact", middleware.Authenticate(middleware.RequireAdmin(contact.GetSubmissions)))
	router.POST("/api/admin/contact/:submissionid/reply", middleware.Authenticate(middleware.RequireAdmin(contact.ReplyToSubmission)))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.POST("/api/admin/roles/grant", middleware.Authenticate(middleware.RequireAdmin(admin.GrantAdminRole)))
	router.POST("/api/admin/roles/revoke", middleware.Authenticate(middleware.RequireAdmin(admin.RevokeAdminRole)))
	router.GET("/api/admin/stats", middleware.Authenticate(middleware.RequireAdmin(admin.GetDashboardStats)))
	router.POST("/api/admin/seed/products", middleware.Authenticate(middleware.RequireAdmin(admin.SeedProducts)))
	router.POST("/api/admin/seed/coupons", middleware.Authenticate(middleware.RequireAdmin(admin.SeedCoupons)))
}
