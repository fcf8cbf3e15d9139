// Package nop содержит логгер, который ничего не пишет. Используется в тестах и CLI.
package nop

import "walt/pkg/logger"

type Logger struct{}

func New() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(string, ...logger.Field) {}

func (l *Logger) Info(string, ...logger.Field) {}

func (l *Logger) Warn(string, ...logger.Field) {}

func (l *Logger) Error(string, ...logger.Field) {}

func (l *Logger) With(...logger.Field) logger.Logger {
	return l
}
