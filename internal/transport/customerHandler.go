package transport

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// statusFromError maps the error taxonomy to HTTP statuses: validation and
// parse problems are the caller's fault, unknown ids are 404, everything
// else is an internal failure surfaced generically.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrCustomerNotFound),
		errors.Is(err, entity.ErrProductNotFound),
		errors.Is(err, entity.ErrNotificationNotFound),
		errors.Is(err, entity.ErrPurchaseNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrProductNameRequired),
		errors.Is(err, entity.ErrNegativePrice),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ListCustomers serves both the full listing and the search box. An empty
// term falls back to the full listing here at the presentation boundary;
// the store itself treats "" as a literal substring.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	term := c.Query("q")

	var (
		customers []*entity.Customer
		err       error
	)
	if term == "" {
		customers, err = h.customerService.ListCustomers(c.Request.Context())
	} else {
		customers, err = h.customerService.SearchCustomers(c.Request.Context(), term)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetPurchases(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	purchases, err := h.customerService.GetPurchases(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchases)
}

// GetBirthdays lists the birthday customers of a month (default: current),
// with derived age and days-until figures.
func (h *CustomerHandler) GetBirthdays(c *gin.Context) {
	today := entity.Today()

	month := int(today.Month())
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a number between 1 and 12"})
			return
		}
		month = parsed
	}

	entries, err := h.customerService.BirthdaysInMonth(c.Request.Context(), time.Month(month), today)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
