package chat

import "context"

// Repository define a interface para operações de repositório de conversas
type Repository interface {
	// CreateChat abre uma nova conversa
	CreateChat(ctx context.Context, c *Chat) error

	// FindChat busca uma conversa da loja
	FindChat(ctx context.Context, storeID, id string) (*Chat, error)

	// ListChats lista as conversas da loja, mais recentes primeiro
	ListChats(ctx context.Context, storeID string, limit, offset int) ([]*Chat, error)

	// CountChats conta as conversas da loja
	CountChats(ctx context.Context, storeID string) (int, error)

	// SaveMessage salva uma nova mensagem e atualiza o chat
	SaveMessage(ctx context.Context, c *Chat, m *Message) error

	// GetHistory retorna o histórico de mensagens de um chat
	GetHistory(ctx context.Context, chatID string, limit, offset int) ([]Message, error)
}
