// Package scheduler executa os jobs periódicos da plataforma.
package scheduler

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hugohenrick/toko-digital/internal/config"
	"github.com/hugohenrick/toko-digital/pkg/logger"
	"github.com/robfig/cron/v3"
)

const jobTimeout = 10 * time.Minute

// Rollup consolida os snapshots de análise de um dia
type Rollup interface {
	Rollup(ctx context.Context, day time.Time) (int, error)
}

// TrialExpirer expira as avaliações vencidas
type TrialExpirer interface {
	ExpireTrials(ctx context.Context) (int, error)
}

// Scheduler agenda a consolidação de análises e a expiração de avaliações
type Scheduler struct {
	cfg     config.SchedulerConfig
	rollup  Rollup
	trials  TrialExpirer
	log     logger.Logger
	now     func() time.Time
	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// New cria uma nova instância de Scheduler
func New(cfg config.SchedulerConfig, rollup Rollup, trials TrialExpirer, log logger.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, rollup: rollup, trials: trials, log: log, now: time.Now}
}

// normalizeSpec aceita expressões de 5 campos acrescentando o campo de segundos
func normalizeSpec(spec string) string {
	if len(strings.Fields(spec)) == 5 {
		return "0 " + spec
	}
	return spec
}

// Start registra os jobs e inicia o cron
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if !s.cfg.Enabled {
		s.log.Info("Scheduler desabilitado")
		return nil
	}

	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(normalizeSpec(s.cfg.AnalyticsRollup), s.RunRollup); err != nil {
		return err
	}
	if _, err := c.AddFunc(normalizeSpec(s.cfg.TrialExpirySweep), s.RunTrialExpiry); err != nil {
		return err
	}

	c.Start()
	s.cron = c
	s.running = true
	s.log.Info("Scheduler iniciado", "analytics_rollup", s.cfg.AnalyticsRollup, "trial_expiry", s.cfg.TrialExpirySweep)
	return nil
}

// Stop aguarda os jobs em execução e para o cron
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.log.Info("Scheduler parado")
}

// RunRollup consolida o dia anterior
func (s *Scheduler) RunRollup() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := s.now()
	day := start.UTC().AddDate(0, 0, -1)
	n, err := s.rollup.Rollup(ctx, day)
	if err != nil {
		s.log.Error("Falha na consolidação de análises", "day", day.Format("2006-01-02"), "error", err)
		return
	}
	s.log.Info("Job de consolidação concluído", "stores", n, "duration", time.Since(start).String())
}

// RunTrialExpiry expira as avaliações vencidas
func (s *Scheduler) RunTrialExpiry() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.trials.ExpireTrials(ctx)
	if err != nil {
		s.log.Error("Falha ao expirar avaliações", "error", err)
		return
	}
	if n > 0 {
		s.log.Info("Job de expiração concluído", "expired", n)
	}
}
