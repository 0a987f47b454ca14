package notification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

var (
	ErrEmptyTitle  = errors.New("título não pode ser vazio")
	ErrInvalidType = errors.New("tipo de notificação inválido")
)

// Type é a severidade da notificação
type Type string

const (
	TypeInfo    Type = "INFO"
	TypeWarning Type = "WARNING"
	TypeError   Type = "ERROR"
	TypeSuccess Type = "SUCCESS"
)

// SystemNotification é um aviso da plataforma, opcionalmente restrito a um papel
type SystemNotification struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Type       Type       `json:"type"`
	TargetRole *user.Role `json:"targetRole,omitempty"`
	IsRead     bool       `json:"isRead"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// New cria uma nova notificação
func New(title, message string, t Type, target *user.Role) (*SystemNotification, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	switch t {
	case TypeInfo, TypeWarning, TypeError, TypeSuccess:
	case "":
		t = TypeInfo
	default:
		return nil, ErrInvalidType
	}

	return &SystemNotification{
		ID:         uuid.New().String(),
		Title:      title,
		Message:    message,
		Type:       t,
		TargetRole: target,
		CreatedAt:  time.Now(),
	}, nil
}

// VisibleTo indica se o papel informado deve receber a notificação
func (n *SystemNotification) VisibleTo(role user.Role) bool {
	return n.TargetRole == nil || *n.TargetRole == role
}
