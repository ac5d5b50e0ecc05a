package techquiry

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Logger is the logging surface the package needs. Messages take a text and
// optional key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// UserLogins is the store contract the lifecycle service depends on. Select
// operations report an absent record as a nil UserLogin with a nil error;
// any other failure is a storage failure.
type UserLogins interface {
	Select(ctx context.Context, id int) (*UserLogin, error)
	SelectFromUsername(ctx context.Context, username string) (*UserLogin, error)
	Insert(ctx context.Context, login *UserLogin) (int, error)
	Update(ctx context.Context, login *UserLogin) error
	Delete(ctx context.Context, id int) error
}

type defLogger struct{}

func (d defLogger) Debug(msg string, args ...any) {
	fmt.Println(append([]any{"[DBG] TECHQUIRY " + msg}, args...)...)
}

func (d defLogger) Info(msg string, args ...any) {
	fmt.Println(append([]any{"[INF] TECHQUIRY " + msg}, args...)...)
}

func (d defLogger) Warn(msg string, args ...any) {
	fmt.Println(append([]any{"[WRN] TECHQUIRY " + msg}, args...)...)
}

func (d defLogger) Error(msg string, args ...any) {
	fmt.Println(append([]any{"[ERR] TECHQUIRY " + msg}, args...)...)
}

// ZapLogger adapts a zap sugared logger to the Logger interface.
type ZapLogger struct {
	log *zap.SugaredLogger
}

// NewZapLogger wraps the given zap logger.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log.Sugar()}
}

func (z *ZapLogger) Debug(msg string, args ...any) { z.log.Debugw(msg, args...) }
func (z *ZapLogger) Info(msg string, args ...any)  { z.log.Infow(msg, args...) }
func (z *ZapLogger) Warn(msg string, args ...any)  { z.log.Warnw(msg, args...) }
func (z *ZapLogger) Error(msg string, args ...any) { z.log.Errorw(msg, args...) }

var _ Logger = defLogger{}
var _ Logger = (*ZapLogger)(nil)
