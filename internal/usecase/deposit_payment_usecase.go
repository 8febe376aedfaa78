package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/usecase/interfaces"
	"log"
	"strconv"
	"strings"
	"time"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrEstimateNotApproved            = errors.New("estimate not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositPaymentUseCase charges the deposit of an approved estimate.
//
// The amount always comes from the stored estimate, never from the caller.

type IDepositPaymentUseCase interface {
	CreateDeposit(ctx context.Context, estimateID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo         interfaces.IDepositPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
	cfg          config.PaymentsConfig
	now          func() time.Time
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway, cfg config.PaymentsConfig) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway, cfg: cfg, now: time.Now}
}

func (u *DepositPaymentUseCase) CreateDeposit(ctx context.Context, estimateID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[payment][usecase] create-deposit start raw_estimate_id=%q payload_len=%d", estimateID, len(mpPayload))
	mockMode := u.cfg.Mock
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		log.Printf("[payment][usecase] invalid estimate_id (empty)")
		return entities.DepositPayment{}, ErrInvalidPaymentEstimateID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[payment][usecase] gateway not configured estimate_id=%s", estimateID)
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.estimateRepo == nil {
		log.Printf("[payment][usecase] estimate repository not configured estimate_id=%s", estimateID)
		return entities.DepositPayment{}, errors.New("estimate repository not configured")
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.DepositPayment{}, err
	}
	if est.ID == "" {
		log.Printf("[payment][usecase] estimate not found estimate_id=%s", estimateID)
		return entities.DepositPayment{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusApproved {
		log.Printf("[payment][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.DepositPayment{}, ErrEstimateNotApproved
	}

	amount := est.DepositAmount(u.cfg.DepositPercent)
	log.Printf("[payment][usecase] estimate loaded estimate_id=%s total=%.2f deposit=%.2f", estimateID, est.Breakdown.TotalProjectCost, amount)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			log.Printf("[payment][usecase] payload is not an object estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = estimateID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for estimate %s", estimateID)
	}
	reqMap["transaction_amount"] = amount
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway estimate_id=%s", estimateID)
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(reqMap)
		if err != nil {
			return entities.DepositPayment{}, err
		}
	} else {
		log.Printf("[payment][usecase] calling payment gateway estimate_id=%s", estimateID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
			return entities.DepositPayment{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success estimate_id=%s provider_payment_id=%s provider_status=%s", estimateID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	p := entities.DepositPayment{
		ID:           providerPaymentID,
		EstimateID:   estimateID,
		Amount:       amount,
		Date:         u.now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[payment][usecase] create-deposit success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)
	return created, nil
}

func (u *DepositPaymentUseCase) mockPayment(req map[string]any) (string, string, json.RawMessage, error) {
	now := u.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
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
	payer, ok := m["payer"].(map[string]any)
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

func (u *DepositPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(u.cfg.MercadoPagoAccessToken, "TEST-")
}

func (u *DepositPaymentUseCase) ensurePayerDefaults(m map[string]any) {
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

	// Either payer.id or payer.email is enough; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.cfg.TestPayerEmail != "" {
			payer["email"] = u.cfg.TestPayerEmail
		} else if u.sandbox() {
			payer["email"] = "test_user_us@testuser.com"
		}
	}
}

func (u *DepositPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.sandbox() || u.cfg.TestPayerUserID == "" || u.cfg.TestPayerEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != u.cfg.TestPayerUserID {
		return
	}

	payer["email"] = u.cfg.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}
