package activitylog

import (
	"time"

	"github.com/google/uuid"
)

// Ações registradas
const (
	ActionActivate       = "activate"
	ActionSuspend        = "suspend"
	ActionVerify         = "verify"
	ActionClearCache     = "clear_cache"
	ActionBackupDatabase = "backup_database"
	ActionUpdateSettings = "update_settings"
)

// Tipos de alvo
const (
	TargetUser   = "USER"
	TargetStore  = "STORE"
	TargetSystem = "SYSTEM"
)

// AdminActivityLog registra uma ação administrativa efetiva
type AdminActivityLog struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"adminId"`
	Action     string    `json:"action"`
	TargetType string    `json:"targetType"`
	TargetID   string    `json:"targetId,omitempty"`
	Details    string    `json:"details,omitempty"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// New cria um novo registro de atividade
func New(adminID, action, targetType, targetID, details, ip string) *AdminActivityLog {
	return &AdminActivityLog{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		IPAddress:  ip,
		CreatedAt:  time.Now(),
	}
}
