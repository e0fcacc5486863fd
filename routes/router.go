package routes

import (
	"comanda-api/controllers"
	"comanda-api/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, prefs *controllers.PreferenceController) {

	r.POST("/login", controllers.Login)

	// Products (menu), grouped into categories
	products := r.Group("/products")
	products.Use(middlewares.AuthMiddleware())
	{
		products.GET("/", controllers.GetProducts)
		products.POST("/", middlewares.RoleMiddleware("admin"), controllers.CreateProduct)
		products.PUT("/:id", middlewares.RoleMiddleware("admin"), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteProduct)
	}

	// Orders (kitchen queue + lifecycle)
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.POST("/", controllers.CreateOrder)
		orders.GET("/", controllers.GetOrders)
		orders.GET("/history", controllers.GetSalesHistory)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.PATCH("/:id/status", controllers.UpdateOrderStatus)
		orders.POST("/:id/pay", controllers.PayOrder)
		orders.DELETE("/:id", controllers.DeleteOrder)
	}

	// Dashboard
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/", controllers.GetDashboard)
	}

	// Employees (admin only)
	employees := r.Group("/employees")
	employees.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		employees.GET("/", controllers.GetEmployees)
		employees.POST("/", controllers.CreateEmployee)
		employees.PUT("/:id", controllers.UpdateEmployee)
		employees.DELETE("/:id", controllers.DeleteEmployee)
	}

	// Work logs (admin only)
	worklogs := r.Group("/worklogs")
	worklogs.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		worklogs.GET("/week", controllers.GetWeekReport)
		worklogs.GET("/cell", controllers.ResolveWorkLogCell)
		worklogs.POST("/", controllers.CreateWorkLog)
		worklogs.PUT("/:id", controllers.UpdateWorkLog)
		worklogs.DELETE("/:id", controllers.DeleteWorkLog)
	}

	// Form schemas
	forms := r.Group("/forms")
	forms.Use(middlewares.AuthMiddleware())
	{
		forms.GET("/payment", controllers.GetPaymentFormSchema)
		forms.GET("/worklog", controllers.GetWorkLogFormSchema)
	}

	// Per-user client state
	preferences := r.Group("/preferences")
	preferences.Use(middlewares.AuthMiddleware())
	{
		preferences.GET("/", prefs.Get)
		preferences.PUT("/", prefs.Put)
		preferences.DELETE("/", prefs.Clear)
	}
}
