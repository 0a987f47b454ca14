package subscription

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlan   = errors.New("plano inválido")
	ErrEmptyUser     = errors.New("assinatura precisa de um usuário")
	ErrNotCancelable = errors.New("assinatura não pode ser cancelada")
)

// Plan representa o plano contratado
type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanBasic      Plan = "BASIC"
	PlanPro        Plan = "PRO"
	PlanEnterprise Plan = "ENTERPRISE"
)

// Status representa a situação da assinatura
type Status string

const (
	StatusTrial     Status = "TRIAL"
	StatusActive    Status = "ACTIVE"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

// Preço mensal em IDR
var planPrices = map[Plan]float64{
	PlanFree:       0,
	PlanBasic:      99000,
	PlanPro:        249000,
	PlanEnterprise: 999000,
}

// PlanPrice retorna o preço mensal do plano
func PlanPrice(p Plan) (float64, error) {
	price, ok := planPrices[p]
	if !ok {
		return 0, ErrInvalidPlan
	}
	return price, nil
}

// Plans retorna os planos na ordem de exibição
func Plans() []Plan {
	return []Plan{PlanFree, PlanBasic, PlanPro, PlanEnterprise}
}

// Subscription liga um usuário (e sua loja) a um plano
type Subscription struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	StoreID          *string    `json:"storeId,omitempty"`
	Plan             Plan       `json:"plan"`
	Status           Status     `json:"status"`
	TrialEndDate     *time.Time `json:"trialEndDate,omitempty"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd,omitempty"`
	Amount           float64    `json:"amount"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// NewTrial cria uma assinatura em período de teste
func NewTrial(userID string, storeID *string, plan Plan, trialDays int, now time.Time) (*Subscription, error) {
	if userID == "" {
		return nil, ErrEmptyUser
	}
	price, err := PlanPrice(plan)
	if err != nil {
		return nil, err
	}
	trialEnd := now.AddDate(0, 0, trialDays)

	return &Subscription{
		ID:           uuid.New().String(),
		UserID:       userID,
		StoreID:      storeID,
		Plan:         plan,
		Status:       StatusTrial,
		TrialEndDate: &trialEnd,
		Amount:       price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Activate ativa a assinatura paga por um mês a partir de now
func (s *Subscription) Activate(now time.Time) {
	end := now.AddDate(0, 1, 0)
	s.Status = StatusActive
	s.CurrentPeriodEnd = &end
	s.UpdatedAt = now
}

// Cancel cancela a assinatura. Assinaturas expiradas não podem ser canceladas.
func (s *Subscription) Cancel(now time.Time) error {
	if s.Status == StatusExpired || s.Status == StatusCancelled {
		return fmt.Errorf("%w: status %s", ErrNotCancelable, s.Status)
	}
	s.Status = StatusCancelled
	s.UpdatedAt = now
	return nil
}

// Expire marca o teste como expirado quando o prazo passou.
// Retorna true se o status mudou.
func (s *Subscription) Expire(now time.Time) bool {
	if s.Status != StatusTrial || s.TrialEndDate == nil || !s.TrialEndDate.Before(now) {
		return false
	}
	s.Status = StatusExpired
	s.UpdatedAt = now
	return true
}

// TrialState é o texto exibido para o período de teste
type TrialState struct {
	Text     string `json:"text"`
	DaysLeft int    `json:"daysLeft"`
	Expired  bool   `json:"expired"`
}

// TrialStatus deriva o texto do período de teste:
// "Subscribed" para assinatura ativa, "Trial Expired" quando o prazo passou,
// "{N} days left" caso contrário, com N arredondado para cima.
func TrialStatus(trialEnd *time.Time, sub *Subscription, now time.Time) TrialState {
	if sub != nil && sub.Status == StatusActive {
		return TrialState{Text: "Subscribed"}
	}
	if trialEnd == nil {
		return TrialState{Text: "No Trial"}
	}
	if trialEnd.Before(now) {
		return TrialState{Text: "Trial Expired", Expired: true}
	}

	days := int(math.Ceil(float64(trialEnd.Sub(now)) / float64(24*time.Hour)))
	return TrialState{Text: fmt.Sprintf("%d days left", days), DaysLeft: days}
}
