package middleware

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every update together with its duration and error
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Duration("duration", time.Since(start)),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}
			if callback := c.Callback(); callback != nil {
				fields = append(fields, zap.String("callback", callback.Unique+cleanData(callback.Data)))
			} else {
				fields = append(fields, zap.String("text", c.Text()))
			}

			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Info("Update handled", fields...)
			return nil
		}
	}
}

// Recover turns a panic in a handler into an error
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic in handler", zap.Any("panic", r), zap.Stack("stack"))
					err = fmt.Errorf("handler panic: %v", r)
				}
			}()
			return next(c)
		}
	}
}

// cleanData drops the leading form feed telebot puts before button data
func cleanData(data string) string {
	if len(data) > 0 && data[0] == '\f' {
		return data[1:]
	}
	return data
}
