package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// LogrusLogger é a implementação de Logger sobre o logrus
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogger cria uma nova instância de Logger com nível e formato configuráveis
func NewLogger(level string, jsonFormat bool) Logger {
	return NewLoggerWithOutput(os.Stdout, level, jsonFormat)
}

// NewLoggerWithOutput cria um Logger escrevendo no writer informado
func NewLoggerWithOutput(out io.Writer, level string, jsonFormat bool) Logger {
	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if jsonFormat {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// Nop retorna um Logger que descarta todas as mensagens (útil em testes)
func Nop() Logger {
	return NewLoggerWithOutput(io.Discard, "panic", false)
}

// Info registra uma mensagem de informação
func (l *LogrusLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Info(msg)
}

// Error registra uma mensagem de erro
func (l *LogrusLogger) Error(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Error(msg)
}

// Debug registra uma mensagem de debug
func (l *LogrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Debug(msg)
}

// Warn registra uma mensagem de aviso
func (l *LogrusLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Warn(msg)
}

// toFields converte pares chave/valor em campos do logrus.
// Uma chave sem valor é registrada como "extra".
func toFields(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			fields["extra"] = key
			break
		}
		value := keysAndValues[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		fields[key] = value
	}
	return fields
}
