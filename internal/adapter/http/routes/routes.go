package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "fieldops_billing/docs" // swag-generated
	"fieldops_billing/internal/adapter/http/handlers"
	"fieldops_billing/internal/adapter/http/middleware"
	"fieldops_billing/internal/adapter/persistence/repository"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/infrastructure/database"
	"fieldops_billing/internal/infrastructure/notify"
	"fieldops_billing/internal/infrastructure/payments"
	"fieldops_billing/internal/infrastructure/scheduling"
	"fieldops_billing/internal/usecase"
	"fieldops_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := envInt("PORT", 8080)
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	clock := interfaces.RealClock{}

	costProfileRepo := repository.NewCostProfileDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	snapshotRepo := repository.NewEstimateSnapshotDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	ledgerRepo := repository.NewPaymentLedgerDynamoRepository(ddb)
	contractRepo := repository.NewContractDynamoRepository(ddb)
	ruleRepo := repository.NewPricingRuleDynamoRepository(ddb)
	tokenRepo := repository.NewPortalTokenDynamoRepository(ddb)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb)
	jobRepo := repository.NewJobDynamoRepository(ddb)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Payment gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	notifier := notify.NewLogNotifier()
	conflicts := scheduling.NewNoConflictChecker()
	portalBaseURL := getenvDefault("PORTAL_BASE_URL", "http://localhost:8080")

	costProfileUC := usecase.NewCostProfileUseCase(costProfileRepo, clock)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, estimateRepo, auditRepo, clock)
	paymentUC := usecase.NewPaymentUseCase(ledgerRepo, invoiceRepo, auditRepo, gateway, clock)
	ruleUC := usecase.NewRulePricingUseCase(ruleRepo, estimateRepo, snapshotRepo, auditRepo, clock)
	jobUC := usecase.NewJobUseCase(jobRepo, invoiceRepo, auditRepo, conflicts, clock)

	// The portal use case issues tokens for the estimate/contract use cases,
	// which in turn hand links to the notifier. Construct portal last and
	// bridge the issuer through a late-bound indirection.
	issuer := &lateIssuer{}
	estimateUC := usecase.NewEstimateUseCase(estimateRepo, snapshotRepo, auditRepo,
		costProfileRepo, ruleRepo, issuer, notifier, clock, portalBaseURL)
	contractUC := usecase.NewContractUseCase(contractRepo, estimateRepo, snapshotRepo,
		auditRepo, issuer, notifier, clock, portalBaseURL)
	portalUC := usecase.NewPortalUseCase(tokenRepo, auditRepo, estimateUC, invoiceUC,
		contractUC, paymentUC, clock, tokenTTLsFromEnv())
	issuer.bind(portalUC)

	costProfileHandler := handlers.NewCostProfileHandler(costProfileUC)
	estimateHandler := handlers.NewEstimateHandler(estimateUC)
	ruleHandler := handlers.NewPricingRuleHandler(ruleUC)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUC)
	paymentHandler := handlers.NewPaymentHandler(paymentUC)
	contractHandler := handlers.NewContractHandler(contractUC)
	jobHandler := handlers.NewJobHandler(jobUC)
	portalHandler := handlers.NewPortalHandler(portalUC, portalBaseURL)

	limiter := middleware.NewRateLimiter(
		envInt("PORTAL_RATE_LIMIT", 10),
		time.Duration(envInt("PORTAL_RATE_WINDOW_SECONDS", 60))*time.Second,
		clock,
	)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, costProfileHandler, estimateHandler, ruleHandler,
		invoiceHandler, paymentHandler, contractHandler, jobHandler, portalHandler)
	addPortalRoutes(v1, portalHandler, limiter)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// lateIssuer breaks the construction cycle between the portal use case (the
// token issuer) and the document use cases that send links.
type lateIssuer struct {
	target usecase.TokenIssuer
}

func (l *lateIssuer) bind(t usecase.TokenIssuer) { l.target = t }

func (l *lateIssuer) Issue(ctx context.Context, companyID string, docType entities.DocumentType, docID string, purpose entities.TokenPurpose) (string, time.Time, error) {
	return l.target.Issue(ctx, companyID, docType, docID, purpose)
}

func tokenTTLsFromEnv() usecase.TokenTTLs {
	ttls := usecase.DefaultTokenTTLs()
	if d := envInt("ESTIMATE_LINK_TTL_DAYS", 0); d > 0 {
		ttls.Estimate = time.Duration(d) * 24 * time.Hour
	}
	if d := envInt("INVOICE_LINK_TTL_DAYS", 0); d > 0 {
		ttls.Invoice = time.Duration(d) * 24 * time.Hour
	}
	if d := envInt("CONTRACT_LINK_TTL_DAYS", 0); d > 0 {
		ttls.Contract = time.Duration(d) * 24 * time.Hour
	}
	if d := envInt("PAYMENT_PLAN_LINK_TTL_DAYS", 0); d > 0 {
		ttls.PaymentPlan = time.Duration(d) * 24 * time.Hour
	}
	return ttls
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
