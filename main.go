package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/robfig/cron/v3"

	"freightdesk/collections"
	"freightdesk/config"
	"freightdesk/handlers"
	"freightdesk/services"
)

func main() {
	cfg := config.Load()
	app := pocketbase.New()

	wizardStore := services.NewSessionStore()
	reportGate := handlers.NewReportGate(cfg.ReportFailureThreshold)

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	// Abandoned wizard drafts are purged in the background so the store
	// never grows unbounded.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		c := cron.New()
		if _, err := c.AddFunc("@every 15m", func() {
			if n := wizardStore.Purge(cfg.DraftTTL); n > 0 {
				log.Printf("main: purged %d stale wizard drafts", n)
			}
		}); err != nil {
			return err
		}
		c.Start()
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Session resolution and route guarding apply globally
		se.Router.BindFunc(handlers.SessionMiddleware(app, cfg))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage())
		se.Router.POST("/login", handlers.HandleLogin(app, cfg))
		se.Router.POST("/logout", handlers.HandleLogout(cfg))

		// ── Jobs and shipments share one route shape ─────────────
		for _, entity := range []*services.Entity{services.JobEntity, services.ShipmentEntity} {
			base := "/" + entity.Collection
			se.Router.GET(base, handlers.HandleRecordList(app, entity))
			se.Router.GET(base+"/new", handlers.HandleWizardStart(app, entity, wizardStore))
			se.Router.POST(base+"/wizard/{sessionId}", handlers.HandleWizardStep(app, entity, wizardStore))
			se.Router.GET(base+"/{id}/edit", handlers.HandleWizardEdit(app, entity, wizardStore))
			se.Router.DELETE(base+"/{id}", handlers.HandleRecordDelete(app, entity))
			se.Router.GET(base+"/{id}", handlers.HandleRecordView(app, entity))
		}

		// Shipment advice document
		se.Router.GET("/shipments/{id}/pdf", handlers.HandleShipmentExportPDF(app, cfg))

		// ── Vendor CRUD with document slots ──────────────────────
		se.Router.GET("/vendors", handlers.HandleVendorList(app))
		se.Router.GET("/vendors/create", handlers.HandleVendorCreatePage())
		se.Router.POST("/vendors", handlers.HandleVendorCreate(app))
		se.Router.GET("/vendors/{id}/edit", handlers.HandleVendorEditPage(app))
		se.Router.POST("/vendors/{id}/save", handlers.HandleVendorSave(app))
		se.Router.DELETE("/vendors/{id}", handlers.HandleVendorDelete(app))
		se.Router.POST("/vendors/{id}/documents/{slot}", handlers.HandleVendorDocumentUpload(app))
		se.Router.DELETE("/vendors/{id}/documents/{docId}", handlers.HandleVendorDocumentDelete(app))

		// ── DSR report ───────────────────────────────────────────
		se.Router.GET("/report/dsr", handlers.HandleReportView(app, reportGate))
		se.Router.POST("/report/dsr/select-all", handlers.HandleReportSelectAll(app, reportGate))
		se.Router.POST("/report/dsr/export", handlers.HandleReportExport(app, reportGate))

		// Redirect home to the jobs list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/jobs")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
