package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "lending-finance-backend/internal/handlers"
	"lending-finance-backend/internal/repository"
	"lending-finance-backend/internal/services/finance"
	"lending-finance-backend/internal/services/importer"
	"lending-finance-backend/internal/services/lending"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	transactionRepo := repository.NewTransactionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	parser := importer.NewService()
	financeService := finance.NewService(transactionRepo, categoryRepo, parser)
	lendingService := lending.NewService(customerRepo, loanRepo, paymentRepo)

	importHandler := handler.NewImportHandler(parser, financeService)
	financeHandler := handler.NewFinanceHandler(financeService)
	lendingHandler := handler.NewLendingHandler(lendingService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Statement import
	imp := api.Group("/import")
	imp.POST("/upload", importHandler.Upload)
	imp.POST("/save", importHandler.Save)

	// Transactions
	tx := api.Group("/transactions")
	tx.GET("", financeHandler.ListTransactions)
	tx.POST("", financeHandler.CreateTransaction)
	tx.GET("/range", financeHandler.TransactionsByRange)
	tx.GET("/type/:type", financeHandler.TransactionsByType)
	tx.GET("/report/monthly", financeHandler.MonthlyReport)
	tx.GET("/report/yearly", financeHandler.YearlyReport)
	tx.GET("/:id", financeHandler.GetTransaction)
	tx.DELETE("/:id", financeHandler.DeleteTransaction)

	// Categories
	categories := api.Group("/categories")
	categories.GET("", financeHandler.ListCategories)
	categories.POST("", financeHandler.SaveCategory)
	categories.GET("/type/:type", financeHandler.CategoriesByType)
	categories.GET("/:id", financeHandler.GetCategory)
	categories.DELETE("/:id", financeHandler.DeleteCategory)

	// Customers
	customers := api.Group("/customers")
	customers.GET("", lendingHandler.ListCustomers)
	customers.POST("", lendingHandler.SaveCustomer)
	customers.GET("/:id", lendingHandler.GetCustomer)
	customers.DELETE("/:id", lendingHandler.DeleteCustomer)

	// Loans
	loans := api.Group("/loans")
	loans.GET("", lendingHandler.ListLoans)
	loans.POST("", lendingHandler.CreateLoan)
	loans.GET("/:id", lendingHandler.GetLoan)
	loans.DELETE("/:id", lendingHandler.DeleteLoan)

	// Installment schedule preview
	api.GET("/installments/simulate", lendingHandler.SimulateSchedule)

	// Loan payments
	payments := api.Group("/payments")
	payments.GET("", lendingHandler.ListPayments)
	payments.POST("", lendingHandler.CreatePayment)
	payments.GET("/:id", lendingHandler.GetPayment)
	payments.DELETE("/:id", lendingHandler.DeletePayment)
}
