package controller

import (
	"context"
	"io"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/relation"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/internal/service"
)

// AdminService são as ações administrativas
type AdminService interface {
	UserAction(ctx context.Context, actor service.Actor, userID, action string) (*user.User, bool, error)
	StoreAction(ctx context.Context, actor service.Actor, storeID, action string) (*store.Store, bool, error)
	ClearCache(ctx context.Context, actor service.Actor) (int, error)
	RequestBackup(ctx context.Context, actor service.Actor) (string, error)
	Settings(ctx context.Context) (setting.SystemSettings, error)
	UpdateSettings(ctx context.Context, actor service.Actor, in setting.SystemSettings) (setting.SystemSettings, error)
}

// Reports são os painéis e relatórios agregados
type Reports interface {
	DashboardStats(ctx context.Context, storeID string, p report.Period) (report.DashboardStats, error)
	FinancialStats(ctx context.Context, storeID string, p report.Period) (report.FinancialDashboardStats, error)
	SuperAdminStats(ctx context.Context, p report.Period) (report.SuperAdminStats, error)
	AnalyticsSummary(ctx context.Context, storeID string, p report.Period) (report.AnalyticsSummary, error)
	AdminReport(ctx context.Context, p report.Period) (report.AdminReport, error)
	BillingSummary(ctx context.Context) (report.BillingSummary, error)
}

// Relations monta as visões compostas pedidas em include
type Relations interface {
	User(ctx context.Context, u *user.User, inc relation.Include) (*relation.UserWithRelations, error)
	Store(ctx context.Context, s *store.Store, inc relation.Include) (*relation.StoreWithRelations, error)
	StoreCounts(ctx context.Context, storeID string) (*relation.StoreCounts, error)
	Product(ctx context.Context, p *product.Product, inc relation.Include) (*relation.ProductWithRelations, error)
	Order(ctx context.Context, o *order.Order, inc relation.Include) (*relation.OrderWithRelations, error)
	Customer(ctx context.Context, c *customer.Customer, inc relation.Include) (*relation.CustomerWithRelations, error)
	Subscription(ctx context.Context, sub *subscription.Subscription, inc relation.Include) (*relation.SubscriptionWithRelations, error)
}

// ProductService são as regras de produto que dependem da loja
type ProductService interface {
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product, wasActive bool) error
	Bulk(ctx context.Context, storeID, action string, ids []string) (*service.BulkResult, error)
	Export(ctx context.Context, storeID string, ids []string, w io.Writer) (int, error)
	Import(ctx context.Context, storeID string, r io.Reader) (*service.ImportResult, error)
}

// OrderService cria pedidos e controla o ciclo de vida
type OrderService interface {
	Create(ctx context.Context, storeID string, customerID *string, items []service.NewItem, shipping float64, notes string) (*order.Order, error)
	UpdateStatus(ctx context.Context, storeID, id string, next order.Status, paid bool) (*order.Order, error)
}

// TrafficRecorder registra visitas à vitrine
type TrafficRecorder interface {
	RecordView(ctx context.Context, storeID, visitorID string, at time.Time) error
}
