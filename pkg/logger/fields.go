package logger

import (
	"errors"

	"go.llib.dev/seqcursor/pkg/errorkit"
)

type LoggingDetail interface{ addTo(Logger, logEntry) }

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l Logger, e logEntry) {
	e[l.getKeyFormatter()(f.Key)] = l.toFieldValue(f.Value)
}

type Fields map[string]any

func (fields Fields) addTo(l Logger, e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField adds the error message under the "error" key.
// When the error is tagged with an errorkit.Error constant, the constant is logged as the error code.
func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	details := Fields{
		"message": err.Error(),
	}
	var code errorkit.Error
	if errors.As(err, &code) {
		details["code"] = string(code)
	}
	return Field("error", details)
}

func (l Logger) toFieldValue(val any) any {
	switch val := val.(type) {
	case Fields:
		le := logEntry{}
		val.addTo(l, le)
		return map[string]any(le)
	case field:
		le := logEntry{}
		val.addTo(l, le)
		return map[string]any(le)
	case []LoggingDetail:
		le := logEntry{}
		for _, v := range val {
			v.addTo(l, le)
		}
		return map[string]any(le)
	default:
		return val
	}
}

type logEntry map[string]any

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(Logger, logEntry) {}
