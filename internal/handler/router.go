package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campusworks/student-portal-api/api/swagger"
	"github.com/campusworks/student-portal-api/internal/middleware"
	"github.com/campusworks/student-portal-api/internal/repository"
	"github.com/campusworks/student-portal-api/internal/service"
	"github.com/campusworks/student-portal-api/pkg/config"
	"github.com/campusworks/student-portal-api/pkg/logger"
	corsmiddleware "github.com/campusworks/student-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusworks/student-portal-api/pkg/middleware/requestid"
	"github.com/campusworks/student-portal-api/pkg/storage"
)

// NewRouter wires repositories, services and handlers onto a gin engine with
// the standard middleware chain.
func NewRouter(cfg *config.Config, logr *zap.Logger, db *sqlx.DB, blobs *storage.LocalStorage) *gin.Engine {
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	markRepo := repository.NewMarkRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)

	accounts := service.NewAccountService(userRepo, validate, logr)
	assignments := service.NewAssignmentService(assignmentRepo, submissionRepo, blobs, validate, logr)
	students := service.NewStudentService(markRepo, studentRepo, validate, logr)
	certificates := service.NewCertificateService(certificateRepo, blobs, cfg.Storage.AllowedExtensions, logr)
	reports := service.NewReportService(markRepo, studentRepo, logr)

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	accountHandler := NewAccountHandler(accounts)
	assignmentHandler := NewAssignmentHandler(assignments)
	studentHandler := NewStudentHandler(students)
	certificateHandler := NewCertificateHandler(certificates)
	fileHandler := NewFileHandler(blobs)
	reportHandler := NewReportHandler(reports)
	metricsHandler := NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}

	r.GET("/health", metricsHandler.Health)
	if metricsSvc != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/create_account", accountHandler.CreateAccount)
	r.POST("/login", accountHandler.Login)

	r.POST("/assignments", assignmentHandler.Create)
	r.GET("/assignments", assignmentHandler.List)
	r.POST("/submit_assignment/:assignment_id", assignmentHandler.Submit)
	r.GET("/submissions", assignmentHandler.ListSubmissions)
	r.PUT("/submission_remarks/:submission_id", assignmentHandler.UpdateRemarks)

	r.GET("/student/:username/marks", studentHandler.Marks)
	r.POST("/marks", studentHandler.SaveMark)
	r.GET("/student/:username/attendance", studentHandler.Attendance)
	r.PUT("/student/:username/attendance", studentHandler.UpdateAttendance)
	r.GET("/student/:username/report", reportHandler.StudentReport)
	r.GET("/reports/marks.csv", reportHandler.MarksCSV)

	r.POST("/upload_certificate", certificateHandler.Upload)
	r.GET("/certificates", certificateHandler.List)
	r.PUT("/certificates/:cert_id/status", certificateHandler.UpdateStatus)

	r.GET("/uploads/:filename", fileHandler.Download)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	})

	return r
}
