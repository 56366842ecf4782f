package scheduler

import (
	"context"
	"fmt"
	"time"

	"crm-web-server/internal/util"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Purger : всё, что умеет удалять истёкшие ссылки
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SchedulerService : периодическая очистка истёкших ссылок
type SchedulerService struct {
	scheduler *gocron.Scheduler
	purgers   map[string]Purger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewSchedulerService(purgers map[string]Purger) *SchedulerService {
	ctx, cancel := context.WithCancel(context.Background())

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &SchedulerService{
		scheduler: s,
		purgers:   purgers,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// RegisterPurge : одна задача на cron-выражение, проходит по всем видам ссылок
func (s *SchedulerService) RegisterPurge(cronExpr string) error {
	if _, err := s.scheduler.Cron(cronExpr).Do(func() { s.PurgeAll(s.ctx) }); err != nil {
		return fmt.Errorf("не удалось зарегистрировать очистку ссылок (%s): %w", cronExpr, err)
	}
	return nil
}

// PurgeAll : ошибка одного вида ссылок не останавливает остальные
func (s *SchedulerService) PurgeAll(ctx context.Context) map[string]int64 {
	removed := make(map[string]int64, len(s.purgers))
	for name, purger := range s.purgers {
		n, err := purger.PurgeExpired(ctx)
		if err != nil {
			util.Logger.Error("ошибка очистки ссылок", zap.String("kind", name), zap.Error(err))
			continue
		}
		removed[name] = n
		if n > 0 {
			util.Logger.Info("удалены истёкшие ссылки", zap.String("kind", name), zap.Int64("count", n))
		}
	}
	return removed
}

func (s *SchedulerService) Start() {
	util.Logger.Info("запуск планировщика")
	s.scheduler.StartAsync()
}

func (s *SchedulerService) Stop() {
	util.Logger.Info("остановка планировщика")
	s.scheduler.Stop()
	s.cancel()
}
