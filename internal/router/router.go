package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)

	ListAvailableSlots(c *ginext.Context)
	BookSlot(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	Notify(c *ginext.Context)

	CreateSlot(c *ginext.Context)
	ListAdminSlots(c *ginext.Context)
	UpdateSlot(c *ginext.Context)
	DeleteSlot(c *ginext.Context)
	AddClientToSlot(c *ginext.Context)

	ListClients(c *ginext.Context)
	GetClient(c *ginext.Context)
	RenewClient(c *ginext.Context)
	DeleteClient(c *ginext.Context)
	ClientSlots(c *ginext.Context)

	UsageReport(c *ginext.Context)
	UsageReportCSV(c *ginext.Context)
	Overview(c *ginext.Context)
	RecentActivity(c *ginext.Context)
}

// InitRouter wires the public surface. authMW authenticates every /api route
// past the auth endpoints; adminMW additionally gates the /api/admin group.
func InitRouter(mode string, h Handler, authMW, adminMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		authed := api.Group("", authMW)
		{
			authed.GET("/me", h.Me)
			authed.GET("/me/bookings", h.MyBookings)

			authed.GET("/slots", h.ListAvailableSlots)
			authed.POST("/slots/:id/book", h.BookSlot)
			authed.POST("/slots/:id/cancel", h.CancelBooking)

			authed.POST("/notify", h.Notify)

			admin := authed.Group("/admin", adminMW)
			{
				admin.POST("/slot", h.CreateSlot)
				admin.GET("/slots", h.ListAdminSlots)
				admin.PUT("/slot/:id", h.UpdateSlot)
				admin.DELETE("/slot/:id", h.DeleteSlot)
				admin.PUT("/slot/:id/add-client", h.AddClientToSlot)

				admin.GET("/clients", h.ListClients)
				admin.GET("/client/:id", h.GetClient)
				admin.PUT("/client/:id/renew", h.RenewClient)
				admin.DELETE("/client/:id", h.DeleteClient)
				admin.GET("/client/:id/slots", h.ClientSlots)

				admin.GET("/report/usage", h.UsageReport)
				admin.GET("/report/usage/export", h.UsageReportCSV)
				admin.GET("/overview", h.Overview)
				admin.GET("/recent-activity", h.RecentActivity)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
