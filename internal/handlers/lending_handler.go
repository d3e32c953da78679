package handler

import (
	"net/http"
	"strconv"
	"time"

	"lending-finance-backend/internal/models"
	"lending-finance-backend/internal/services/lending"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LendingHandler struct {
	service *lending.Service
}

func NewLendingHandler(s *lending.Service) *LendingHandler {
	return &LendingHandler{service: s}
}

func (h *LendingHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *LendingHandler) GetCustomer(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}
	customer, err := h.service.GetCustomer(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *LendingHandler) SaveCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.BindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if customer.FirstName == "" || customer.LastName == "" || customer.DocumentNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first name, last name and document number required"})
		return
	}
	if err := h.service.SaveCustomer(&customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *LendingHandler) DeleteCustomer(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}
	if err := h.service.DeleteCustomer(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}

func (h *LendingHandler) ListLoans(c *gin.Context) {
	loans, err := h.service.GetLoans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LendingHandler) GetLoan(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid loan ID"})
		return
	}
	loan, err := h.service.GetLoan(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "loan not found"})
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LendingHandler) CreateLoan(c *gin.Context) {
	var loan models.Loan
	if err := c.BindJSON(&loan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.service.CreateLoan(&loan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LendingHandler) DeleteLoan(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid loan ID"})
		return
	}
	if err := h.service.DeleteLoan(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "loan deleted"})
}

// SimulateSchedule previews an installment schedule from query params
// without persisting anything.
func (h *LendingHandler) SimulateSchedule(c *gin.Context) {
	principal, err := decimal.NewFromString(c.Query("principal"))
	if err != nil || !principal.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "principal query param required"})
		return
	}
	rate, err := decimal.NewFromString(c.Query("rate"))
	if err != nil || rate.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rate query param required"})
		return
	}
	term, err := strconv.Atoi(c.Query("term"))
	if err != nil || term <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term query param required"})
		return
	}

	interestType := models.InterestType(c.DefaultQuery("interestType", string(models.InterestSimple)))
	disbursement := time.Now()
	if d := c.Query("disbursementDate"); d != "" {
		disbursement, err = time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disbursementDate, expected yyyy-mm-dd"})
			return
		}
	}

	installments := h.service.Simulate(models.Loan{
		Principal:           principal,
		MonthlyInterestRate: rate,
		TermMonths:          term,
		InterestType:        interestType,
		DisbursementDate:    disbursement,
	})
	c.JSON(http.StatusOK, installments)
}

func (h *LendingHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.GetPayments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *LendingHandler) GetPayment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}
	payment, err := h.service.GetPayment(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *LendingHandler) CreatePayment(c *gin.Context) {
	var payment models.Payment
	if err := c.BindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payment.InstallmentID == 0 || !payment.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "installment ID and positive amount required"})
		return
	}
	if payment.Type == "" {
		payment.Type = models.PaymentNormal
	}
	if err := h.service.RegisterPayment(&payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *LendingHandler) DeletePayment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}
	if err := h.service.DeletePayment(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}
