package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/toko-digital/internal/domain/chat"
	"github.com/hugohenrick/toko-digital/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrChatNotFound = errors.New("conversa não encontrada")

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

func (r *ChatRepository) CreateChat(ctx context.Context, c *chat.Chat) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO chats (id, store_id, customer_name, customer_phone, last_message_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.StoreID, c.CustomerName, c.CustomerPhone, c.LastMessageAt, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar conversa: %w", err)
	}
	return nil
}

func (r *ChatRepository) FindChat(ctx context.Context, storeID, id string) (*chat.Chat, error) {
	c := &chat.Chat{}
	err := r.db.QueryRow(ctx,
		`SELECT id, store_id, customer_name, customer_phone, last_message_at, created_at
		FROM chats WHERE store_id = $1 AND id = $2`, storeID, id).Scan(
		&c.ID, &c.StoreID, &c.CustomerName, &c.CustomerPhone, &c.LastMessageAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conversa: %w", err)
	}
	return c, nil
}

func (r *ChatRepository) ListChats(ctx context.Context, storeID string, limit, offset int) ([]*chat.Chat, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, store_id, customer_name, customer_phone, last_message_at, created_at
		FROM chats WHERE store_id = $1
		ORDER BY last_message_at DESC NULLS LAST, created_at DESC
		LIMIT $2 OFFSET $3`, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar conversas: %w", err)
	}
	defer rows.Close()

	var chats []*chat.Chat
	for rows.Next() {
		c := &chat.Chat{}
		if err := rows.Scan(&c.ID, &c.StoreID, &c.CustomerName, &c.CustomerPhone, &c.LastMessageAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler conversa: %w", err)
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

func (r *ChatRepository) CountChats(ctx context.Context, storeID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM chats WHERE store_id = $1", storeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar conversas: %w", err)
	}
	return count, nil
}

// SaveMessage grava a mensagem e atualiza last_message_at na mesma transação
func (r *ChatRepository) SaveMessage(ctx context.Context, c *chat.Chat, m *chat.Message) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO chat_messages (id, chat_id, sender, content, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			m.ID, c.ID, string(m.Sender), m.Content, m.CreatedAt); err != nil {
			return fmt.Errorf("erro ao salvar mensagem: %w", err)
		}

		result, err := tx.Exec(ctx,
			"UPDATE chats SET last_message_at = $1 WHERE store_id = $2 AND id = $3",
			m.CreatedAt, c.StoreID, c.ID)
		if err != nil {
			return fmt.Errorf("erro ao atualizar conversa: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrChatNotFound
		}
		return nil
	})
}

func (r *ChatRepository) GetHistory(ctx context.Context, chatID string, limit, offset int) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, chat_id, sender, content, created_at
		FROM chat_messages WHERE chat_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`, chatID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var m chat.Message
		var sender string
		if err := rows.Scan(&m.ID, &m.ChatID, &sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		m.Sender = chat.Sender(sender)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
