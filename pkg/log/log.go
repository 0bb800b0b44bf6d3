package log

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é uma interface que define os métodos de log
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// contextKey para armazenar o ID de correlação no contexto
type contextKey string

// CorrelationIDKey é a chave para armazenar o ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// logger implementa a interface Logger e encapsula logrus
type logger struct {
	entry *logrus.Entry
}

// L é uma instância global de Logger para uso direto
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// Setup configura o logger global a partir da configuração da aplicação
func Setup(level, format string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			PadLevelText:  true,
		})
	}

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    false,
		DisableColors:    false,
		DisableTimestamp: false,
		PadLevelText:     true,
	})

	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithField adiciona um único campo ao Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields adiciona múltiplos campos ao Logger
func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError adiciona um erro ao Logger
func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extrai o ID de correlação do contexto para o Logger
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
