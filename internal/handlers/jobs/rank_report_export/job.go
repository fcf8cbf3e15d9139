package rank_report_export

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"walt/pkg/logger"
)

// Job по расписанию выгружает рейтинг водителей во внешнее хранилище.
type Job struct {
	log      handlerLogger
	reports  ReportService
	exporter Exporter
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
}

func New(log handlerLogger, reports ReportService, exporter Exporter, schedule string, timeout time.Duration) *Job {
	return &Job{
		log:      log.With(logger.NewField("job", "rank_report_export")),
		reports:  reports,
		exporter: exporter,
		schedule: schedule,
		timeout:  timeout,
		// медленная выгрузка не должна накладываться на следующий запуск
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

func (j *Job) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.log.Error("rank report export failed", logger.NewField("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.log.Info("rank report export job started", logger.NewField("schedule", j.schedule))
	return nil
}

// Stop дожидается завершения уже запущенной выгрузки.
func (j *Job) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("rank report export job stopped")
}

func (j *Job) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	ranked, err := j.reports.GetDriverRankReport(ctx)
	if err != nil {
		return fmt.Errorf("build rank report: %w", err)
	}

	key, err := j.exporter.Export(ctx, ranked)
	if err != nil {
		return fmt.Errorf("export rank report: %w", err)
	}

	j.log.Info("rank report exported",
		logger.NewField("key", key),
		logger.NewField("drivers", len(ranked)),
	)
	return nil
}
