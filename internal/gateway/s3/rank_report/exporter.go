package rank_report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"walt/internal/entities"
	"walt/internal/gateway/metrics"
	"walt/pkg/retrier"
	"walt/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "s3"
	methodPut   = "PutObject"
)

type Exporter struct {
	client  client
	bucket  string
	prefix  string
	retrier retrierExecutor
	now     func() time.Time
}

type retrierExecutor interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

func New(client client, bucket, prefix string) *Exporter {
	return &Exporter{
		client: client,
		bucket: bucket,
		prefix: prefix,
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			MaxElapsedTime:  30 * time.Second,
			Randomization:   0.5,
			Multiplier:      2,
			MaxRetries:      3,
			ShouldRetry:     isRetryable,
		}),
		now: time.Now,
	}
}

type snapshot struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Drivers     []driverRow `json:"drivers"`
}

type driverRow struct {
	Rank          int    `json:"rank"`
	DriverID      int64  `json:"driver_id"`
	DriverName    string `json:"driver_name"`
	CityID        int64  `json:"city_id"`
	TotalDistance int64  `json:"total_distance"`
}

// Export выгружает рейтинг в <prefix>/<RFC3339>.json и возвращает ключ объекта.
func (e *Exporter) Export(ctx context.Context, ranked []entities.DriverDistance) (string, error) {
	generatedAt := e.now().UTC()

	rows := make([]driverRow, 0, len(ranked))
	for i, row := range ranked {
		rows = append(rows, driverRow{
			Rank:          i + 1,
			DriverID:      row.DriverID,
			DriverName:    row.DriverName,
			CityID:        row.CityID,
			TotalDistance: row.TotalDistance,
		})
	}

	body, err := json.Marshal(snapshot{GeneratedAt: generatedAt, Drivers: rows})
	if err != nil {
		return "", fmt.Errorf("marshal rank report: %w", err)
	}

	key := path.Join(e.prefix, generatedAt.Format(time.RFC3339)+".json")

	err = metrics.Execute(ctx, e.retrier, serviceName, methodPut, resultLabel, func(ctx context.Context) error {
		_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(e.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String("application/json"),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("gateway s3, put %s: %w", key, err)
	}

	return key, nil
}

func isRetryable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func resultLabel(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "error"
}
