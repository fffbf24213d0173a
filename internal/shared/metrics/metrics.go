package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	loginSuccessTotal  atomic.Uint64
	loginFailureTotal  atomic.Uint64
	uploadTotal        atomic.Uint64
	uploadNotifyFailed atomic.Uint64
	chatQueryTotal     atomic.Uint64
	chatRelayFailed    atomic.Uint64

	chatRelayDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncLoginSuccess increments the successful-login counter.
func IncLoginSuccess() {
	loginSuccessTotal.Add(1)
}

// IncLoginFailure increments the failed-login counter.
func IncLoginFailure() {
	loginFailureTotal.Add(1)
}

// IncUpload increments the document-upload counter.
func IncUpload() {
	uploadTotal.Add(1)
}

// IncUploadNotifyFailed increments the failed-processing-notification counter.
func IncUploadNotifyFailed() {
	uploadNotifyFailed.Add(1)
}

// IncChatQuery increments the chat-query counter.
func IncChatQuery() {
	chatQueryTotal.Add(1)
}

// IncChatRelayFailed increments the failed-chat-relay counter.
func IncChatRelayFailed() {
	chatRelayFailed.Add(1)
}

// ObserveChatRelayDurationMs records a chat relay round trip in milliseconds.
func ObserveChatRelayDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	chatRelayDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "login_success_total", "Total successful logins", loginSuccessTotal.Load())
	writeCounter(&buf, "login_failure_total", "Total failed logins", loginFailureTotal.Load())
	writeCounter(&buf, "document_upload_total", "Total documents uploaded", uploadTotal.Load())
	writeCounter(&buf, "document_notify_failed_total", "Total failed processing notifications", uploadNotifyFailed.Load())
	writeCounter(&buf, "chat_query_total", "Total chat queries relayed", chatQueryTotal.Load())
	writeCounter(&buf, "chat_relay_failed_total", "Total failed chat relay calls", chatRelayFailed.Load())
	writeHistogram(&buf, "chat_relay_duration_ms", "Chat relay round trip in milliseconds", chatRelayDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
