package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestMiddleware(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Transport Middleware Suite")
}

var _ = ginkgo.Describe("RequestID", func() {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ginkgo.It("should echo an incoming trace id back on the response", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "trace-abc")
		w := httptest.NewRecorder()

		RequestID(okHandler).ServeHTTP(w, req)

		gomega.Expect(w.Header().Get("X-Trace-ID")).To(gomega.Equal("trace-abc"))
	})

	ginkgo.It("should generate a trace id when the request has none", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		RequestID(okHandler).ServeHTTP(w, req)

		gomega.Expect(w.Header().Get("X-Trace-ID")).NotTo(gomega.BeEmpty())
	})

	ginkgo.It("should expose the trace id to handlers via TraceID", func() {
		var seen string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = TraceID(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "trace-abc")

		RequestID(inner).ServeHTTP(httptest.NewRecorder(), req)

		gomega.Expect(seen).To(gomega.Equal("trace-abc"))
	})
})

var _ = ginkgo.Describe("LoggingMiddleware", func() {
	ginkgo.It("should stamp request and response log lines with the trace id", func() {
		var buf bytes.Buffer
		slogger := slog.New(slog.NewJSONHandler(&buf, nil))

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler := RequestID(LoggingMiddleware(slogger)(inner))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/empresas", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		traceID := w.Header().Get("X-Trace-ID")
		gomega.Expect(traceID).NotTo(gomega.BeEmpty())

		dec := json.NewDecoder(&buf)
		var lines []map[string]any
		for dec.More() {
			var line map[string]any
			gomega.Expect(dec.Decode(&line)).To(gomega.Succeed())
			lines = append(lines, line)
		}

		gomega.Expect(lines).To(gomega.HaveLen(2))
		for _, line := range lines {
			gomega.Expect(line["request_id"]).To(gomega.Equal(traceID))
		}
	})
})
