package activitylog

import "context"

// Filter define os filtros da listagem
type Filter struct {
	AdminID    string
	TargetType string
	Action     string
}

// Repository é somente de inclusão
type Repository interface {
	Create(ctx context.Context, l *AdminActivityLog) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]*AdminActivityLog, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
