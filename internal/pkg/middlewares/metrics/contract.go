package metrics

import "walt/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
