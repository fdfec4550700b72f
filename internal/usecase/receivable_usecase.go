package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrReceivableNotFound             = errors.New("receivable not found")
	ErrInvalidReceivableID            = errors.New("invalid receivable id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderNotFinalized              = errors.New("service order not finalized")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IReceivableUseCase encapsulates "charge a finalized order" behavior.
//
// The amount is never taken from the caller: it is recomputed from the
// order's items and discount at charge time, so the charge can never
// disagree with the order total.

type IReceivableUseCase interface {
	CreateAndApprove(ctx context.Context, orderID int64, mpPayload json.RawMessage) (entities.Receivable, error)
	GetByID(ctx context.Context, id string) (entities.Receivable, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.Receivable, error)
}

type ReceivableUseCase struct {
	repo      interfaces.IReceivableRepository
	orderRepo interfaces.IServiceOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IReceivableUseCase = (*ReceivableUseCase)(nil)

func NewReceivableUseCase(repo interfaces.IReceivableRepository, orderRepo interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway) *ReceivableUseCase {
	return &ReceivableUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *ReceivableUseCase) CreateAndApprove(ctx context.Context, orderID int64, mpPayload json.RawMessage) (entities.Receivable, error) {
	log.Printf("[receivable][usecase] create-and-approve start order_id=%d payload_len=%d", orderID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	if orderID <= 0 {
		log.Printf("[receivable][usecase] invalid order id")
		return entities.Receivable{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[receivable][usecase] invalid payload order_id=%d", orderID)
			return entities.Receivable{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[receivable][usecase] gateway not configured order_id=%d", orderID)
		return entities.Receivable{}, errors.New("payment gateway not configured")
	}
	if u.orderRepo == nil {
		return entities.Receivable{}, errors.New("service order repository not configured")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[receivable][usecase] failed loading order order_id=%d err=%v", orderID, err)
		return entities.Receivable{}, remoteErr("get", "service_order", formatID(orderID), err)
	}
	if order.ID == 0 {
		log.Printf("[receivable][usecase] order not found order_id=%d", orderID)
		return entities.Receivable{}, ErrOrderNotFound
	}
	if !mockMode && order.Status != entities.OrderStatusFinalizada {
		log.Printf("[receivable][usecase] order not finalized order_id=%d status=%s", orderID, order.Status)
		return entities.Receivable{}, ErrOrderNotFinalized
	}

	totals, err := entities.ComputeTotals(order.Items, order.DiscountAmount)
	if err != nil {
		log.Printf("[receivable][usecase] order totals failed order_id=%d err=%v", orderID, err)
		return entities.Receivable{}, err
	}
	log.Printf("[receivable][usecase] order loaded order_id=%d status=%s total=%.2f", orderID, order.Status, totals.Total)

	// Ensure basic linkage with the order when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[receivable][usecase] missing payment_method_id order_id=%d", orderID)
			return entities.Receivable{}, ErrInvalidMPPayload
		}
		if !mockMode {
			ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Printf("[receivable][usecase] missing/invalid payer order_id=%d", orderID)
				return entities.Receivable{}, ErrInvalidMPPayload
			}
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = formatID(orderID)
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Ordem de servico %d", orderID)
		}

		// The source of truth for the amount is the order in DB.
		reqMap["transaction_amount"] = totals.Total
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Printf("[receivable][usecase] payload unmarshal failed order_id=%d err=%v", orderID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[receivable][usecase] mock mode enabled; skipping external payment gateway order_id=%d", orderID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = formatID(orderID)
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = totals.Total
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Receivable{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[receivable][usecase] calling payment gateway order_id=%d", orderID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[receivable][usecase] payment gateway failed order_id=%d err=%v", orderID, err)
			switch {
			case isGatewayCustomerNotFound(err):
				return entities.Receivable{}, ErrPaymentGatewayCustomerNotFound
			case isGatewayInvalidUsers(err):
				return entities.Receivable{}, ErrPaymentGatewayInvalidUsers
			case isGatewayUnauthorized(err):
				return entities.Receivable{}, ErrPaymentGatewayUnauthorized
			case isGatewayBadRequest(err):
				return entities.Receivable{}, ErrPaymentGatewayBadRequest
			}
			return entities.Receivable{}, err
		}
	}
	log.Printf("[receivable][usecase] payment gateway success order_id=%d provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	status := entities.ReceivableStatusAprovado
	if providerStatus != "" && providerStatus != "approved" {
		status = entities.ReceivableStatusNegado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[receivable][usecase] provider response unmarshal failed order_id=%d err=%v", orderID, err)
	}

	r := entities.Receivable{
		ID:           providerPaymentID,
		OrderID:      orderID,
		Amount:       totals.Total,
		Date:         time.Now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[receivable][usecase] repository create failed order_id=%d receivable_id=%s err=%v", orderID, r.ID, err)
		return entities.Receivable{}, remoteErr("create", "receivable", r.ID, err)
	}
	log.Printf("[receivable][usecase] create-and-approve success order_id=%d receivable_id=%s status=%s", orderID, created.ID, created.Status)
	return created, nil
}

func (u *ReceivableUseCase) GetByID(ctx context.Context, id string) (entities.Receivable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Receivable{}, ErrInvalidReceivableID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Receivable{}, remoteErr("get", "receivable", id, err)
	}
	if r.ID == "" {
		return entities.Receivable{}, ErrReceivableNotFound
	}
	return r, nil
}

func (u *ReceivableUseCase) ListByOrderID(ctx context.Context, orderID int64) ([]entities.Receivable, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	rs, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, remoteErr("list", "receivable", formatID(orderID), err)
	}
	return rs, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
