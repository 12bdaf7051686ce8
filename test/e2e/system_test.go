package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/sutharpankaj1/flowq/internal/api"
	"github.com/sutharpankaj1/flowq/internal/broker"
	"github.com/sutharpankaj1/flowq/internal/storage/memory"
)

// Message represents a message from the API
type Message struct {
	ID            string            `json:"id"`
	Body          string            `json:"body"`
	ContentType   string            `json:"content_type"`
	Priority      int               `json:"priority"`
	Status        string            `json:"status"`
	DeliveryCount uint32            `json:"delivery_count"`
	Attributes    map[string]string `json:"attributes"`
	CreatedAt     string            `json:"created_at"`
	ExpiresAt     string            `json:"expires_at"`
}

// Stats represents queue statistics from the API
type Stats struct {
	MessageCount  uint64 `json:"message_count"`
	PendingCount  uint64 `json:"pending_count"`
	InFlightCount uint64 `json:"in_flight_count"`
	SizeBytes     uint64 `json:"size_bytes"`
}

// TestResult tracks the result of each test
type TestResult struct {
	Name     string
	Passed   bool
	Error    error
	Duration time.Duration
}

var baseURL string

func main() {
	fmt.Println("=== FlowQ E2E System Test ===")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := broker.New(memory.NewEngine(logger), logger)
	server := httptest.NewServer(api.NewRouter(b).Engine())
	defer server.Close()
	baseURL = server.URL

	results := []TestResult{}

	results = append(results, runTest("API Health Check", testHealthCheck))
	results = append(results, runTest("Create Queue", testCreateQueue))
	results = append(results, runTest("Duplicate Queue Rejected", testDuplicateQueue))
	results = append(results, runTest("Publish and Peek", testPublishAndPeek))
	results = append(results, runTest("Receive Batch and Stats", testReceiveBatchAndStats))
	results = append(results, runTest("Ack Lifecycle", testAckLifecycle))
	results = append(results, runTest("Nack Redelivery", testNackRedelivery))
	results = append(results, runTest("Retry Limit", testRetryLimit))
	results = append(results, runTest("Queue Capacity", testQueueCapacity))
	results = append(results, runTest("Purge and Delete", testPurgeAndDelete))
	results = append(results, runTest("Swagger Documentation Available", testSwaggerDocs))

	fmt.Println()
	fmt.Println("=== Test Results ===")
	fmt.Println()
	passed := 0
	failed := 0
	for _, result := range results {
		status := "✅ PASS"
		if !result.Passed {
			status = "❌ FAIL"
			failed++
		} else {
			passed++
		}
		fmt.Printf("%s %s (%.2fs)\n", status, result.Name, result.Duration.Seconds())
		if result.Error != nil {
			fmt.Printf("   Error: %v\n", result.Error)
		}
	}

	fmt.Printf("\n=== Summary ===\n")
	fmt.Printf("Total: %d | Passed: %d | Failed: %d\n", len(results), passed, failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func runTest(name string, testFunc func() error) TestResult {
	fmt.Printf("Running: %s...\n", name)
	start := time.Now()
	err := testFunc()
	duration := time.Since(start)

	result := TestResult{
		Name:     name,
		Passed:   err == nil,
		Error:    err,
		Duration: duration,
	}

	if err != nil {
		fmt.Printf("  ❌ Failed: %v\n", err)
	} else {
		fmt.Printf("  ✅ Passed\n")
	}

	return result
}

func testHealthCheck() error {
	resp, err := http.Get(baseURL + "/health")
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("  Health response: %s\n", string(body))
	return nil
}

func testCreateQueue() error {
	status, body, err := postJSON("/api/v1/queues", map[string]any{"name": "orders"})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("expected status 201, got %d: %s", status, body)
	}
	return nil
}

func testDuplicateQueue() error {
	status, body, err := postJSON("/api/v1/queues", map[string]any{"name": "orders"})
	if err != nil {
		return err
	}
	if status != http.StatusConflict {
		return fmt.Errorf("expected status 409 for duplicate queue, got %d: %s", status, body)
	}
	return nil
}

func testPublishAndPeek() error {
	for _, payload := range []string{"first", "second", "third"} {
		status, body, err := postJSON("/api/v1/queues/orders/messages", map[string]any{"body": payload})
		if err != nil {
			return err
		}
		if status != http.StatusCreated {
			return fmt.Errorf("publish failed with status %d: %s", status, body)
		}
	}

	var head Message
	if err := getJSON("/api/v1/queues/orders/messages/peek", &head); err != nil {
		return err
	}
	if head.Body != "first" {
		return fmt.Errorf("expected head of queue to be %q, got %q", "first", head.Body)
	}
	if head.Status != "pending" {
		return fmt.Errorf("peek must not deliver: status %q", head.Status)
	}

	// Peek again: unchanged
	if err := getJSON("/api/v1/queues/orders/messages/peek", &head); err != nil {
		return err
	}
	if head.Body != "first" {
		return fmt.Errorf("peek mutated the queue: head is now %q", head.Body)
	}

	fmt.Printf("  Published 3 messages, head of queue: %q\n", head.Body)
	return nil
}

func testReceiveBatchAndStats() error {
	var received []Message
	if err := getJSON("/api/v1/queues/orders/messages?max=2", &received); err != nil {
		return err
	}
	if len(received) != 2 {
		return fmt.Errorf("expected 2 messages, got %d", len(received))
	}
	if received[0].Body != "first" || received[1].Body != "second" {
		return fmt.Errorf("delivery order broken: got %q then %q", received[0].Body, received[1].Body)
	}
	for _, msg := range received {
		if msg.Status != "delivered" || msg.DeliveryCount != 1 {
			return fmt.Errorf("message %s: status=%q delivery_count=%d", msg.ID, msg.Status, msg.DeliveryCount)
		}
	}

	var stats Stats
	if err := getJSON("/api/v1/queues/orders/stats", &stats); err != nil {
		return err
	}
	if stats.PendingCount != 1 || stats.InFlightCount != 2 {
		return fmt.Errorf("expected 1 pending / 2 in-flight, got %d / %d", stats.PendingCount, stats.InFlightCount)
	}

	fmt.Printf("  Received %d messages, stats: pending=%d in-flight=%d\n",
		len(received), stats.PendingCount, stats.InFlightCount)

	// Ack both so later tests start from a known state
	for _, msg := range received {
		status, body, err := postJSON("/api/v1/queues/orders/messages/ack", map[string]any{"message_id": msg.ID})
		if err != nil {
			return err
		}
		if status != http.StatusNoContent {
			return fmt.Errorf("ack failed with status %d: %s", status, body)
		}
	}
	return nil
}

func testAckLifecycle() error {
	var received []Message
	if err := getJSON("/api/v1/queues/orders/messages?max=1", &received); err != nil {
		return err
	}
	if len(received) != 1 {
		return fmt.Errorf("expected 1 message, got %d", len(received))
	}

	id := received[0].ID
	status, body, err := postJSON("/api/v1/queues/orders/messages/ack", map[string]any{"message_id": id})
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("ack failed with status %d: %s", status, body)
	}

	// Second ack of the same id must fail
	status, _, err = postJSON("/api/v1/queues/orders/messages/ack", map[string]any{"message_id": id})
	if err != nil {
		return err
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("expected 404 for double ack, got %d", status)
	}

	fmt.Printf("  Acked message %s, double ack rejected\n", id)
	return nil
}

func testNackRedelivery() error {
	status, body, err := postJSON("/api/v1/queues/orders/messages", map[string]any{"body": "retry-me"})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("publish failed with status %d: %s", status, body)
	}

	var received []Message
	if err := getJSON("/api/v1/queues/orders/messages?max=1", &received); err != nil {
		return err
	}
	if len(received) != 1 {
		return fmt.Errorf("expected 1 message, got %d", len(received))
	}

	id := received[0].ID
	status, body, err = postJSON("/api/v1/queues/orders/messages/nack", map[string]any{"message_id": id})
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("nack failed with status %d: %s", status, body)
	}

	// The nacked message goes back to the head of the queue
	var head Message
	if err := getJSON("/api/v1/queues/orders/messages/peek", &head); err != nil {
		return err
	}
	if head.ID != id {
		return fmt.Errorf("nacked message not at head: expected %s, got %s", id, head.ID)
	}

	if err := getJSON("/api/v1/queues/orders/messages?max=1", &received); err != nil {
		return err
	}
	if len(received) != 1 || received[0].ID != id {
		return fmt.Errorf("expected redelivery of %s", id)
	}
	if received[0].DeliveryCount != 2 {
		return fmt.Errorf("expected delivery_count 2 after redelivery, got %d", received[0].DeliveryCount)
	}

	// Clean up
	status, _, err = postJSON("/api/v1/queues/orders/messages/ack", map[string]any{"message_id": id})
	if err != nil || status != http.StatusNoContent {
		return fmt.Errorf("cleanup ack failed: status=%d err=%v", status, err)
	}

	fmt.Printf("  Message %s redelivered with delivery_count=2\n", id)
	return nil
}

func testRetryLimit() error {
	status, body, err := postJSON("/api/v1/queues", map[string]any{
		"name":   "retries",
		"config": map[string]any{"max_retries": 1},
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("queue creation failed with status %d: %s", status, body)
	}

	status, _, err = postJSON("/api/v1/queues/retries/messages", map[string]any{"body": "doomed"})
	if err != nil || status != http.StatusCreated {
		return fmt.Errorf("publish failed: status=%d err=%v", status, err)
	}

	var received []Message
	if err := getJSON("/api/v1/queues/retries/messages?max=1", &received); err != nil {
		return err
	}
	if len(received) != 1 {
		return fmt.Errorf("expected 1 message, got %d", len(received))
	}

	id := received[0].ID
	status, _, err = postJSON("/api/v1/queues/retries/messages/nack", map[string]any{"message_id": id})
	if err != nil || status != http.StatusNoContent {
		return fmt.Errorf("nack failed: status=%d err=%v", status, err)
	}

	// Retry limit reached: the message is dropped, not requeued
	var stats Stats
	if err := getJSON("/api/v1/queues/retries/stats", &stats); err != nil {
		return err
	}
	if stats.MessageCount != 0 {
		return fmt.Errorf("expected empty queue after retry limit, got %d messages", stats.MessageCount)
	}

	fmt.Printf("  Message %s dropped after exceeding max_retries=1\n", id)
	return nil
}

func testQueueCapacity() error {
	status, body, err := postJSON("/api/v1/queues", map[string]any{
		"name":   "bounded",
		"config": map[string]any{"max_messages": 1},
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("queue creation failed with status %d: %s", status, body)
	}

	status, _, err = postJSON("/api/v1/queues/bounded/messages", map[string]any{"body": "fits"})
	if err != nil || status != http.StatusCreated {
		return fmt.Errorf("first publish failed: status=%d err=%v", status, err)
	}

	status, _, err = postJSON("/api/v1/queues/bounded/messages", map[string]any{"body": "overflow"})
	if err != nil {
		return err
	}
	if status != http.StatusServiceUnavailable {
		return fmt.Errorf("expected 503 when queue is full, got %d", status)
	}

	fmt.Printf("  Publish to full queue rejected with 503\n")
	return nil
}

func testPurgeAndDelete() error {
	var purge struct {
		Purged uint64 `json:"purged"`
	}
	status, body, err := postJSON("/api/v1/queues/bounded/purge", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("purge failed with status %d: %s", status, body)
	}
	if err := json.Unmarshal([]byte(body), &purge); err != nil {
		return fmt.Errorf("failed to decode purge response: %w", err)
	}
	if purge.Purged != 1 {
		return fmt.Errorf("expected 1 purged message, got %d", purge.Purged)
	}

	req, _ := http.NewRequest(http.MethodDelete, baseURL+"/api/v1/queues/bounded", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("expected 204 on delete, got %d", resp.StatusCode)
	}

	// Gone for good
	resp2, err := http.Get(baseURL + "/api/v1/queues/bounded")
	if err != nil {
		return err
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		return fmt.Errorf("expected 404 after delete, got %d", resp2.StatusCode)
	}

	fmt.Printf("  Purged %d message, queue deleted\n", purge.Purged)
	return nil
}

func testSwaggerDocs() error {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		return fmt.Errorf("swagger docs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	fmt.Printf("  ✓ Swagger documentation is accessible\n")
	return nil
}

// Helper functions

func postJSON(path string, payload any) (int, string, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, "", fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	resp, err := http.Post(baseURL+path, "application/json", reader)
	if err != nil {
		return 0, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), nil
}

func getJSON(path string, out any) error {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("expected status 200, got %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
