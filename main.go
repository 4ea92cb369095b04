package main

import (
	"fmt"
	"log"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/verifiedboiy/fanmeetzone/applications/admin"
	"github.com/verifiedboiy/fanmeetzone/applications/payment"
	"github.com/verifiedboiy/fanmeetzone/applications/uploads"
	"github.com/verifiedboiy/fanmeetzone/applications/wizard"
	"github.com/verifiedboiy/fanmeetzone/config"
	"github.com/verifiedboiy/fanmeetzone/controllers"
	"github.com/verifiedboiy/fanmeetzone/logger"
	"github.com/verifiedboiy/fanmeetzone/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Continuing...")
	}
	cfg := config.Load()

	e := echo.New()

	// --- INITIAL STARTUP LOGGING ---
	logger.Log.Info("[main] program started")
	logger.Log.Info("[main] Configuring global middleware and storage.")

	// Global Middleware: request logging, CORS, and the cookie session the
	// whole wizard rides on.
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(cfg.SessionKey))))

	// --- STORAGE + SERVICES ---
	logger.Log.Info(fmt.Sprintf("[main] Record store at %s, uploads at %s.", cfg.RecordsFile, cfg.UploadsDir))
	recordStore := store.NewRecordStore(cfg.RecordsFile)
	uploadWriter := uploads.NewWriter(cfg.UploadsDir)

	var gateway payment.Gateway
	if cfg.GatewayURL != "" {
		logger.Log.Info(fmt.Sprintf("[main] Using HTTP payment gateway at %s.", cfg.GatewayURL))
		gateway = payment.NewHTTPGateway(cfg.GatewayURL, cfg.GatewayKey)
	} else {
		logger.Log.Warn("[main] No FANMEET_GATEWAY_URL set, using the mock payment gateway.")
		gateway = payment.MockGateway{}
	}

	wizardSvc := &wizard.Service{
		Store:      recordStore,
		Gateway:    gateway,
		AdminEmail: cfg.AdminEmail,
	}
	adminAuth := &admin.Auth{
		JWTSecret:    []byte(cfg.JWTSecret),
		PasswordHash: cfg.AdminPasswordHash,
	}
	moderator := &admin.Moderator{
		Store:         recordStore,
		PublicBaseURL: cfg.PublicBaseURL,
	}

	wizardCtl := &controllers.WizardController{Svc: wizardSvc, Uploads: uploadWriter}
	paymentCtl := &controllers.PaymentController{Svc: wizardSvc, Uploads: uploadWriter}
	cardCtl := &controllers.CardController{Store: recordStore, PublicBaseURL: cfg.PublicBaseURL}
	adminCtl := &controllers.AdminController{Auth: adminAuth, Mod: moderator}

	// --- 1. PUBLIC WIZARD ROUTES ---
	logger.Log.Info("[router] Registering wizard and public routes.")

	e.POST("/celebrity", wizardCtl.CreateCelebrityController)
	e.POST("/passcode", wizardCtl.SubmitPasscodeController)
	e.POST("/client", wizardCtl.SubmitClientController)
	e.GET("/checkout", wizardCtl.CheckoutController)
	e.GET("/payment/options", wizardCtl.PaymentOptionsController)

	e.POST("/payment/card", paymentCtl.PayCardController)
	e.POST("/payment/bank", paymentCtl.PayBankController)
	e.POST("/payment/gift", paymentCtl.PayGiftController)

	e.GET("/card/:ticketID", cardCtl.ViewCardController)
	e.GET("/card/:ticketID/pdf", cardCtl.CardPDFController)
	e.Static("/uploads", cfg.UploadsDir)
	e.GET("/_ping", controllers.PingController)

	// --- 2. ADMIN GROUP (Requires Valid JWT Token) ---
	logger.Log.Warn("[router] Configuring '/admin' group (JWT Required).")

	e.POST("/admin/login", adminCtl.LoginController)

	adminGroup := e.Group("/admin")
	adminGroup.Use(adminAuth.JWTAuthMiddleware)
	adminGroup.GET("/records", adminCtl.ListRecordsController)
	adminGroup.POST("/verify/:ticket/:action", adminCtl.ModerateController)
	adminGroup.DELETE("/records/:ticket", adminCtl.DeleteRecordController)

	logger.Log.Info("[router] Admin: moderation routes configured.")

	// 3. Start the server
	log.Printf("Starting Echo server on http://localhost:%s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
