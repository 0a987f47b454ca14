package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent  = errors.New("mensagem não pode ser vazia")
	ErrInvalidSender = errors.New("remetente inválido")
	ErrNoPhone       = errors.New("telefone do cliente é obrigatório")
)

// Sender identifica quem enviou a mensagem
type Sender string

const (
	SenderCustomer Sender = "CUSTOMER"
	SenderStore    Sender = "STORE"
)

// Chat é uma conversa entre a loja e um cliente (normalmente via WhatsApp)
type Chat struct {
	ID            string     `json:"id"`
	StoreID       string     `json:"storeId"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Message representa uma mensagem no histórico do chat
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewChat abre uma conversa com o cliente
func NewChat(storeID, customerName, customerPhone string) (*Chat, error) {
	customerPhone = strings.TrimSpace(customerPhone)
	if customerPhone == "" {
		return nil, ErrNoPhone
	}
	return &Chat{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		CustomerName:  strings.TrimSpace(customerName),
		CustomerPhone: customerPhone,
		CreatedAt:     time.Now(),
	}, nil
}

// NewMessage cria uma mensagem e atualiza o horário da última mensagem do chat
func (c *Chat) NewMessage(sender Sender, content string) (*Message, error) {
	if sender != SenderCustomer && sender != SenderStore {
		return nil, ErrInvalidSender
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now()
	c.LastMessageAt = &now
	return &Message{
		ID:        uuid.New().String(),
		ChatID:    c.ID,
		Sender:    sender,
		Content:   content,
		CreatedAt: now,
	}, nil
}
