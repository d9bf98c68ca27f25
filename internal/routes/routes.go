package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/auth"
	"github.com/BruksfildServices01/garage-manager/internal/config"
	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/domain/customer"
	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/domain/sales"
	"github.com/BruksfildServices01/garage-manager/internal/domain/txn"
	"github.com/BruksfildServices01/garage-manager/internal/handlers"
	"github.com/BruksfildServices01/garage-manager/internal/infra/memory"
	"github.com/BruksfildServices01/garage-manager/internal/infra/objectstore"
	infraRepo "github.com/BruksfildServices01/garage-manager/internal/infra/repository"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	"github.com/BruksfildServices01/garage-manager/internal/models"
	"github.com/BruksfildServices01/garage-manager/internal/timezone"
	ucAccount "github.com/BruksfildServices01/garage-manager/internal/usecase/account"
	ucCustomer "github.com/BruksfildServices01/garage-manager/internal/usecase/customer"
	ucInventory "github.com/BruksfildServices01/garage-manager/internal/usecase/inventory"
	ucInvoice "github.com/BruksfildServices01/garage-manager/internal/usecase/invoice"
	ucJobCard "github.com/BruksfildServices01/garage-manager/internal/usecase/jobcard"
	ucSales "github.com/BruksfildServices01/garage-manager/internal/usecase/sales"
	"github.com/BruksfildServices01/garage-manager/internal/validators"
)

// Stores groups one implementation of every repository behind the
// transaction manager they share.
type Stores struct {
	Tx        txn.Manager
	Accounts  account.Repository
	Parts     inventory.Repository
	Customers customer.Repository
	JobCards  jobcard.Repository
	Invoices  invoice.Repository
	Sales     sales.Repository
	Audit     audit.Store
}

func GormStores(db *gorm.DB) Stores {
	invoices := infraRepo.NewInvoiceGormRepository(db)
	return Stores{
		Tx:        infraRepo.NewTxManager(db),
		Accounts:  infraRepo.NewAccountGormRepository(db),
		Parts:     infraRepo.NewInventoryGormRepository(db),
		Customers: infraRepo.NewCustomerGormRepository(db),
		JobCards:  infraRepo.NewJobCardGormRepository(db),
		Invoices:  invoices,
		Sales:     invoices,
		Audit:     infraRepo.NewAuditGormRepository(db),
	}
}

func MemoryStores(s *memory.Store) Stores {
	return Stores{
		Tx:        s,
		Accounts:  s,
		Parts:     s,
		Customers: s,
		JobCards:  s,
		Invoices:  s,
		Sales:     s,
		Audit:     s,
	}
}

// Deps is everything the router needs from main.
type Deps struct {
	Config    *config.Config
	Stores    Stores
	Auth      *auth.Service
	RateLimit middleware.RateLimitStore

	// Uploader is nil when object storage is not configured; the upload
	// routes are then not registered.
	Uploader objectstore.Uploader
}

// RegisterRoutes mounts the API on r. The returned dispatcher must be
// closed on shutdown to flush pending audit rows.
func RegisterRoutes(r *gin.Engine, d Deps) *audit.Dispatcher {
	cfg := d.Config
	st := d.Stores

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(st.Audit)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	limiter := middleware.NewRateLimiter(d.RateLimit, middleware.RateLimitConfig{
		Enabled: cfg.RateLimit.Enabled,
		Limit:   cfg.RateLimit.Limit,
		Window:  cfg.RateLimit.Window,
	})

	var domains ucAccount.DomainChecker
	if cfg.Auth.ValidateEmailDomain {
		domains = validators.NewEmailDomainChecker(nil)
	}

	strict := cfg.JobCards.PartPolicy == config.PartPolicyStrict
	loc := timezone.Location(cfg.Server.Timezone)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	authenticate := ucAccount.NewAuthenticate(st.Accounts, d.Auth)

	var uploadLogo *ucAccount.UploadLogo
	var attachPDF *ucInvoice.AttachPDF
	if d.Uploader != nil {
		uploadLogo = ucAccount.NewUploadLogo(st.Accounts, d.Uploader, auditDispatcher)
		attachPDF = ucInvoice.NewAttachPDF(st.Invoices, d.Uploader, auditDispatcher)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAccount.NewRegister(st.Accounts, d.Auth, cfg.ActivationCodes(), domains),
		ucAccount.NewLogin(st.Accounts, d.Auth),
	)

	meHandler := handlers.NewMeHandler(ucAccount.NewGetProfile(st.Accounts))

	garageHandler := handlers.NewGarageHandler(
		ucAccount.NewGetGarage(st.Accounts),
		ucAccount.NewUpdateGarage(st.Accounts, auditDispatcher),
		uploadLogo,
		ucAccount.NewCreateStaff(st.Accounts, d.Auth, auditDispatcher),
	)

	customerHandler := handlers.NewCustomerHandler(
		ucCustomer.NewListCustomers(st.Customers),
		ucCustomer.NewGetCustomer(st.Customers),
		ucCustomer.NewFindOrCreate(st.Customers),
		ucCustomer.NewListInvoices(st.Customers),
	)

	sparePartHandler := handlers.NewSparePartHandler(
		ucInventory.NewListParts(st.Parts),
		ucInventory.NewListLowStock(st.Parts),
		ucInventory.NewGetPart(st.Parts),
		ucInventory.NewFindByBarcode(st.Parts),
		ucInventory.NewCreatePart(st.Parts, auditDispatcher),
		ucInventory.NewUpdatePart(st.Parts, auditDispatcher),
		ucInventory.NewDeletePart(st.Parts, auditDispatcher),
		ucInventory.NewExportParts(st.Parts, loc),
	)

	jobCardHandler := handlers.NewJobCardHandler(
		ucJobCard.NewCreate(st.Tx, st.JobCards, st.Parts, st.Customers, auditDispatcher, strict),
		ucJobCard.NewUpdate(st.Tx, st.JobCards, st.Parts, auditDispatcher, strict),
		ucJobCard.NewList(st.JobCards),
		ucJobCard.NewGet(st.JobCards),
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		ucInvoice.NewIssue(st.Tx, st.Invoices, st.JobCards, st.Customers, auditDispatcher),
		ucInvoice.NewList(st.Invoices),
		ucInvoice.NewGet(st.Invoices),
		ucInvoice.NewUpdateDelivery(st.Invoices, auditDispatcher),
		attachPDF,
	)

	salesHandler := handlers.NewSalesHandler(
		ucSales.NewGetStats(st.Sales),
		ucSales.NewDashboard(st.JobCards, st.Parts, st.Invoices, st.Sales),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, loc)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", limiter.Limit("register"), authHandler.Register)
		api.POST("/auth/login", limiter.Limit("login"), authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(authenticate))
		{
			secured.GET("/user/profile", meHandler.GetProfile)
		}

		// ------------------------------
		// 🏠 GARAGE SCOPED
		// ------------------------------
		garage := api.Group("/garages/:garageId")
		garage.Use(
			middleware.AuthMiddleware(authenticate),
			middleware.RequireGarageAccess(),
		)
		{
			garage.GET("", garageHandler.Get)
			garage.PUT("", middleware.RequireRole(models.RoleGarageAdmin), garageHandler.Update)
			garage.POST("/staff", middleware.RequireRole(models.RoleGarageAdmin), garageHandler.CreateStaff)
			if uploadLogo != nil {
				garage.POST("/logo", middleware.RequireRole(models.RoleGarageAdmin), garageHandler.UploadLogo)
			}

			// CUSTOMERS
			garage.GET("/customers", customerHandler.List)
			garage.POST("/customers", customerHandler.Create)
			garage.GET("/customers/:customerId", customerHandler.Get)
			garage.GET("/customers/:customerId/invoices", customerHandler.ListInvoices)

			// SPARE PARTS
			garage.GET("/spare-parts", sparePartHandler.List)
			garage.GET("/spare-parts/low-stock", sparePartHandler.LowStock)
			garage.GET("/spare-parts/export", middleware.RequireAdmin(), sparePartHandler.Export)
			garage.GET("/spare-parts/barcode/:barcode", sparePartHandler.FindByBarcode)
			garage.GET("/spare-parts/:id", sparePartHandler.Get)
			garage.POST("/spare-parts", middleware.RequireAdmin(), sparePartHandler.Create)
			garage.PUT("/spare-parts/:id", middleware.RequireAdmin(), sparePartHandler.Update)
			garage.DELETE("/spare-parts/:id", middleware.RequireAdmin(), sparePartHandler.Delete)

			// JOB CARDS
			garage.GET("/job-cards", jobCardHandler.List)
			garage.GET("/job-cards/:id", jobCardHandler.Get)
			garage.POST("/job-cards", jobCardHandler.Create)
			garage.PUT("/job-cards/:id", jobCardHandler.Update)

			// INVOICES
			garage.GET("/invoices", invoiceHandler.List)
			garage.GET("/invoices/:id", invoiceHandler.Get)
			garage.POST("/invoices", invoiceHandler.Issue)
			garage.PATCH("/invoices/:id", invoiceHandler.UpdateDelivery)
			if attachPDF != nil {
				garage.POST("/invoices/:id/pdf", invoiceHandler.AttachPDF)
			}

			// SALES
			garage.GET("/sales/stats", middleware.RequireAdmin(), salesHandler.Stats)
			garage.GET("/dashboard", salesHandler.Dashboard)

			garage.GET("/audit-logs", middleware.RequireAdmin(), auditLogsHandler.List)
		}
	}

	return auditDispatcher
}
