package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/pkg/logger"
	"github.com/nats-io/nats.go"
)

// Assuntos publicados
const (
	SubjectUserActivated       = "user.activated"
	SubjectUserSuspended       = "user.suspended"
	SubjectUserRegistered      = "user.registered"
	SubjectStoreActivated      = "store.activated"
	SubjectStoreSuspended      = "store.suspended"
	SubjectStoreVerified       = "store.verified"
	SubjectOrderCompleted      = "order.completed"
	SubjectOrderCancelled      = "order.cancelled"
	SubjectSubscriptionExpired = "subscription.expired"
	SubjectCacheCleared        = "admin.cache_cleared"
	SubjectBackupRequested     = "admin.backup_requested"
)

// Event é o envelope de todas as mensagens publicadas
type Event struct {
	Subject   string      `json:"subject"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// Publisher publica eventos de domínio. Falhas de publicação não interrompem a operação.
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{})
}

// NATSPublisher publica eventos no NATS
type NATSPublisher struct {
	conn *nats.Conn
	log  logger.Logger
}

// NewNATSPublisher conecta ao NATS
func NewNATSPublisher(url string, log logger.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("toko-digital-api"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("NATS desconectado", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconectado", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao NATS: %w", err)
	}

	log.Info("Conectado ao NATS", "url", url)
	return &NATSPublisher{conn: conn, log: log}, nil
}

// Publish serializa e publica o evento. Um publisher nil não faz nada.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) {
	if p == nil || p.conn == nil {
		return
	}

	payload, err := json.Marshal(Event{Subject: subject, Data: data, Timestamp: time.Now().UTC()})
	if err != nil {
		p.log.Error("Erro ao serializar evento", "subject", subject, "error", err)
		return
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		p.log.Warn("Erro ao publicar evento", "subject", subject, "error", err)
	}
}

// Close drena a conexão
func (p *NATSPublisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.log.Warn("Erro ao drenar conexão NATS", "error", err)
	}
}

// Discard descarta todos os eventos; usado quando o NATS está desabilitado
type Discard struct{}

func (Discard) Publish(context.Context, string, interface{}) {}

// Recorder guarda os eventos publicados em memória
type Recorder struct {
	Events []Event
}

// Publish registra o evento
func (r *Recorder) Publish(_ context.Context, subject string, data interface{}) {
	r.Events = append(r.Events, Event{Subject: subject, Data: data, Timestamp: time.Now().UTC()})
}

// Subjects retorna os assuntos na ordem em que foram publicados
func (r *Recorder) Subjects() []string {
	subjects := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		subjects = append(subjects, e.Subject)
	}
	return subjects
}
