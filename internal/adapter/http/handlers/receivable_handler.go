package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

// ReceivableHandler handles HTTP requests for order receivables.

type ReceivableHandler struct {
	usecase usecase.IReceivableUseCase
}

func NewReceivableHandler(uc usecase.IReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{usecase: uc}
}

// CreateReceivableByOrderID charges the finalized order named in the path
// and records the resulting receivable.
func (h *ReceivableHandler) CreateReceivableByOrderID(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	log.Printf("[receivable][handler] create start order_id=%d", orderID)

	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[receivable][handler] payload invalid in mock mode; fallback to empty payload order_id=%d err=%v", orderID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[receivable][handler] invalid payload order_id=%d err=%v", orderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		log.Printf("[receivable][handler] create failed order_id=%d err=%v", orderID, err)
		appErr := mapReceivableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[receivable][handler] create success order_id=%d receivable_id=%s status=%s", orderID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromReceivable(created))
}

// GetReceivableByOrderID returns the latest receivable for an order.
func (h *ReceivableHandler) GetReceivableByOrderID(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	receivables, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[receivable][handler] get-by-order failed order_id=%d err=%v", orderID, err)
		appErr := mapReceivableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(receivables) == 0 {
		appErr := pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "Receivable not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := receivables[0]
	for _, r := range receivables[1:] {
		if r.Date.After(latest.Date) {
			latest = r
		}
	}

	c.JSON(http.StatusOK, response.FromReceivable(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.ReceivableCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.MPPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapReceivableError(err error) *pkg.AppError {
	if appErr, ok := mapCoreError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidReceivableID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFinalized):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FINALIZED", "Service order not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrReceivableNotFound):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "Receivable not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
