package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"walt/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	Do(context.Context) error

	// Info - имя задачи для логов и метки метрик.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи и запускает их в фоне.
//
//  1. Все задачи сначала выполняются по одному разу параллельно. Ошибка или паника
//     любой из них возвращается из New, Worker не создается.
//  2. После прогрева каждая задача запускается раз в TTL до отмены ctx.
//     Ошибки и паники периодических запусков логируются и не останавливают задачу.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("initializing background task", logger.NewField("task", task.Info()))
			if err := worker.run(initCtx, task); err != nil {
				return fmt.Errorf("task %q: %w", task.Info(), err)
			}
			return nil
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.loop(ctx, task)
		}()
	}

	return worker, nil
}

// Wait блокируется до остановки всех задач (отмена контекста, переданного в New).
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	taskLog := []logger.Field{
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", task.TTL().String()),
	}

	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution", taskLog...)
		return
	}
	w.log.Info("starting periodic execution", taskLog...)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping background task", taskLog...)
			return
		case <-ticker.C:
			if err := w.run(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

// run выполняет задачу один раз, превращая панику в ошибку.
func (w *Worker) run(ctx context.Context, task Task) (err error) {
	start := time.Now()
	defer func() {
		result := resultOK
		if r := recover(); r != nil {
			result = resultPanic
			err = fmt.Errorf("panic: %v", r)
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		} else if err != nil {
			result = resultError
		}

		TaskRunsTotal.WithLabelValues(task.Info(), result).Inc()
		TaskDuration.WithLabelValues(task.Info()).Observe(time.Since(start).Seconds())
	}()

	return task.Do(ctx)
}
