package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Intervals struct {
	Heartbeat time.Duration
	Restock   time.Duration
	Report    time.Duration
	Reminders time.Duration
}

type Scheduler struct {
	runner    *Runner
	intervals Intervals
	log       *zap.Logger
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewScheduler(runner *Runner, intervals Intervals, log *zap.Logger) *Scheduler {
	return &Scheduler{
		runner:    runner,
		intervals: intervals,
		log:       log,
		stopCh:    make(chan struct{}),
	}
}

// Start запускает по горутине на задачу
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("starting jobs scheduler")

	s.spawn(ctx, "heartbeat", s.intervals.Heartbeat, true, s.runner.Heartbeat)
	s.spawn(ctx, "restock", s.intervals.Restock, false, s.runner.Restock)
	s.spawn(ctx, "report", s.intervals.Report, false, s.runner.Report)
	s.spawn(ctx, "reminders", s.intervals.Reminders, false, s.runner.Reminders)
}

// Stop останавливает планировщик и ждёт завершения текущих запусков
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.log.Info("stopping jobs scheduler")
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *Scheduler) spawn(ctx context.Context, name string, every time.Duration, immediately bool, job func(context.Context) error) {
	if every <= 0 {
		s.log.Warn("job disabled: non-positive interval", zap.String("job", name))
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop(ctx, name, every, immediately, job)
	}()
}

func (s *Scheduler) loop(ctx context.Context, name string, every time.Duration, immediately bool, job func(context.Context) error) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	// Выполняем сразу при старте
	if immediately {
		s.run(ctx, name, job)
	}

	for {
		select {
		case <-ticker.C:
			s.run(ctx, name, job)
		case <-s.stopCh:
			s.log.Info("job stopped", zap.String("job", name))
			return
		case <-ctx.Done():
			s.log.Info("job cancelled", zap.String("job", name))
			return
		}
	}
}

// run: сбой задачи уже записан в её журнал, повторов нет
func (s *Scheduler) run(ctx context.Context, name string, job func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("job panicked", zap.String("job", name), zap.Any("panic", r))
		}
	}()
	if err := job(ctx); err != nil {
		s.log.Warn("job run failed", zap.String("job", name), zap.Error(err))
	}
}

// RunOnceNow выполняет все задачи немедленно
func (s *Scheduler) RunOnceNow(ctx context.Context) error {
	return s.runner.RunAll(ctx)
}
