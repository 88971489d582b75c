package logger

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iurnickita/binday/internal/logger/config"
)

const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

func NewZapLog(cfg config.Config) (*zap.Logger, error) {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	zl, err := zapcfg.Build()
	if err != nil {
		return nil, err
	}
	return zl, nil
}

// RequestID returns the id attached to ctx by RequestLogMdlw.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// middleware-логер для входящих HTTP-запросов.
func RequestLogMdlw(h http.HandlerFunc, zaplog *zap.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, requestID)
		r = r.WithContext(WithRequestID(r.Context(), requestID))

		// request body
		bodyBytes, _ := io.ReadAll(r.Body)
		r.Body.Close() //  must close
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		zaplog.Info("got incoming HTTP request",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("body", string(bodyBytes)),
		)

		wl := NewResponseWriterLogger(w)

		handlerStart := time.Now()
		h(wl, r)
		handlerDuration := time.Since(handlerStart)

		zaplog.Info("send HTTP response",
			zap.String("request_id", requestID),
			zap.String("code", strconv.Itoa(wl.statusCode)),
			zap.String("body", string(wl.body)),
			zap.String("length", strconv.Itoa(wl.length)),
			zap.String("duration", handlerDuration.String()),
		)
	})
}

type responseWriterLogger struct {
	http.ResponseWriter
	statusCode int
	length     int
	body       []byte
}

func NewResponseWriterLogger(w http.ResponseWriter) *responseWriterLogger {
	return &responseWriterLogger{w, http.StatusOK, 0, []byte{}}
}

func (wl *responseWriterLogger) WriteHeader(code int) {
	wl.statusCode = code
	wl.ResponseWriter.WriteHeader(code)
}

func (wl *responseWriterLogger) Write(b []byte) (n int, err error) {
	wl.body = append(wl.body, b...)
	n, err = wl.ResponseWriter.Write(b)
	wl.length += n
	return
}
