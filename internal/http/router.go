package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tourdesk/internal/config"
	h "tourdesk/internal/http/handlers"
	"tourdesk/internal/http/middleware"
	"tourdesk/internal/repositories"
	"tourdesk/internal/services"
	"tourdesk/internal/sms"
	"tourdesk/internal/upstream"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	client := upstream.NewClient(env.UpstreamBaseURL, env.UpstreamToken)

	var gateway sms.Gateway = sms.LogGateway{}
	if env.SmsGatewayURL != "" {
		gateway = sms.NewHTTPGateway(env.SmsGatewayURL, env.SmsGatewayKey)
	}

	authSvc := services.AuthService{
		Users:  repositories.UserRepository{},
		Secret: []byte(env.JWTSecret),
	}

	auth := h.AuthHandler{Svc: authSvc}
	reminders := h.ReminderHandler{Svc: services.ReminderService{
		Upstream: client,
		Gateway:  gateway,
		Log:      repositories.ReminderLogRepository{},
	}}
	tourMembers := h.TourMemberHandler{
		Upstream: client,
		Invoices: services.InvoiceService{Upstream: client},
	}
	catalog := h.CatalogHandler{Upstream: client}
	dashboard := h.DashboardHandler{Svc: services.DashboardService{
		Upstream: client,
		Log:      repositories.ReminderLogRepository{},
	}}
	templates := h.SmsTemplateHandler{Repo: repositories.TemplateRepository{}}
	presets := h.FilterPresetHandler{Repo: repositories.PresetRepository{}}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		ag := api.Group("/auth")
		ag.POST("/login", auth.Login)
		ag.POST("/register", auth.Register)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth(authSvc))

		rg := secured.Group("/reminders")
		rg.GET("", reminders.List)
		rg.POST("/bulk-sms", reminders.SendBulk)
		rg.POST("/:id/sms", reminders.SendIndividual)
		rg.GET("/:id/frequency", reminders.Frequency)
		rg.GET("/:id/history", reminders.History)

		tm := secured.Group("/tour-members")
		tm.GET("", tourMembers.List)
		tm.GET("/stats", tourMembers.Stats)
		tm.POST("", tourMembers.Create)
		tm.POST("/quote", tourMembers.Quote)
		tm.GET("/:id", tourMembers.Get)
		tm.POST("/:id/payments", tourMembers.AddPayment)
		tm.GET("/:id/invoice", tourMembers.InvoicePDF)
		tm.GET("/:id/payments/:paymentId/receipt", tourMembers.ReceiptPDF)

		secured.GET("/members", catalog.ListMembers)
		secured.GET("/tour-packages", catalog.ListTourPackages)
		secured.GET("/tour-packages/:id", catalog.GetTourPackage)

		eq := secured.Group("/enquiries")
		eq.GET("", catalog.ListEnquiries)
		eq.POST("", catalog.CreateEnquiry)
		eq.PUT("/:id/status", catalog.UpdateEnquiryStatus)

		dg := secured.Group("/dashboard")
		dg.GET("/stats", dashboard.Stats)
		dg.GET("/summary", dashboard.Summary)

		tg := secured.Group("/sms-templates")
		tg.GET("", templates.List)
		tg.POST("", templates.Create)
		tg.PUT("/:id", templates.Update)
		tg.DELETE("/:id", templates.Delete)

		pg := secured.Group("/filter-presets")
		pg.GET("", presets.List)
		pg.POST("", presets.Save)
		pg.DELETE("/:id", presets.Delete)
	}

	return r
}
