package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathTasks       = "/tasks"
	PathReceivables = "/receivables"
)

func addWorkshopRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, taskHandler *handlers.TaskHandler, receivableHandler *handlers.ReceivableHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.PATCH("/:id/finalize", orderHandler.FinalizeOrder)
		orders.PATCH("/:id/cancel", orderHandler.CancelOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.PATCH("/:id/start", taskHandler.StartTask)
		tasks.PATCH("/:id/complete", taskHandler.CompleteTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	receivables := rg.Group(PathReceivables)
	{
		receivables.POST("/:order_id", receivableHandler.CreateReceivableByOrderID)
		receivables.GET("/:order_id", receivableHandler.GetReceivableByOrderID)
	}
}
