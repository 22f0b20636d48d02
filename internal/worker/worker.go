// Package worker consumes ATS analysis jobs from RabbitMQ, runs the engine,
// persists results, and publishes status updates to the result queue.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// AnalysisJob is a queued analysis request. ID doubles as the archive
// session key.
type AnalysisJob struct {
	ID             uuid.UUID `json:"id"`
	ResumeText     string    `json:"resumeText"`
	JobDescription string    `json:"jobDescription"`
}

// StatusUpdate is published to the result queue at each job transition.
type StatusUpdate struct {
	ID        uuid.UUID           `json:"id"`
	Status    string              `json:"status"` // processing, completed, failed
	Error     string              `json:"error,omitempty"`
	Result    *ats.AnalysisResult `json:"result,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// Config wires the worker pool to the broker and queues.
type Config struct {
	Conn          *amqp.Connection
	AnalysisQueue string
	ResultQueue   string
}

// retry retries fn up to attempts times with linear backoff.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// StartConsumerWorkerPool runs n consumer workers and blocks until the
// broker connection closes.
func (wc *Config) StartConsumerWorkerPool(n int) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			if err := wc.consume(id); err != nil {
				slog.Error("worker stopped", slog.Int("worker", id), slog.Any("error", err))
			}
		}(i + 1)
	}
	wg.Wait()
}

func (wc *Config) consume(workerID int) error {
	ch, err := wc.Conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		wc.AnalysisQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", wc.AnalysisQueue, err)
	}

	msgs, err := ch.Consume(wc.AnalysisQueue, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", wc.AnalysisQueue, err)
	}

	slog.Info("worker consuming", slog.Int("worker", workerID), slog.String("queue", wc.AnalysisQueue))
	for msg := range msgs {
		wc.handleMessage(workerID, msg.Body)
	}
	return nil
}

func (wc *Config) handleMessage(workerID int, body []byte) {
	defer func() {
		if r := recover(); r != nil {
			engine.IncrWorkerErrors()
			slog.Error("worker panic recovered", slog.Int("worker", workerID), slog.Any("panic", r))
		}
	}()

	job, err := DecodeJob(body)
	if err != nil {
		engine.IncrWorkerErrors()
		slog.Error("worker: bad message, skipping", slog.Int("worker", workerID), slog.Any("error", err))
		return
	}

	engine.IncrWorkerJobs()
	slog.Info("worker processing", slog.Int("worker", workerID), slog.String("id", job.ID.String()))
	wc.publishStatus(StatusUpdate{ID: job.ID, Status: "processing", Timestamp: time.Now().UTC()})

	engine.IncrAnalyzeRequests()
	result := ats.Analyze(engine.PrepareInput(job.ResumeText), engine.PrepareInput(job.JobDescription))

	if err := wc.persist(job.ID, result); err != nil {
		engine.IncrWorkerErrors()
		slog.Error("worker: persist failed", slog.String("id", job.ID.String()), slog.Any("error", err))
		wc.publishStatus(StatusUpdate{ID: job.ID, Status: "failed", Error: "analysis persistence failed", Timestamp: time.Now().UTC()})
		return
	}

	wc.publishStatus(StatusUpdate{ID: job.ID, Status: "completed", Result: &result, Timestamp: time.Now().UTC()})
	slog.Info("worker completed", slog.Int("worker", workerID), slog.String("id", job.ID.String()), slog.Int("score", result.Score))
}

// persist writes the result to whichever stores are configured. DB writes
// are retried; a job with no configured store still completes.
func (wc *Config) persist(id uuid.UUID, result ats.AnalysisResult) error {
	ctx := context.Background()
	if a := ats.GetArchive(); a != nil {
		if _, err := retry(3, func() (struct{}, error) {
			return struct{}{}, a.Upsert(ctx, id, result)
		}); err != nil {
			return fmt.Errorf("archive upsert: %w", err)
		}
		engine.IncrArchiveWrites()
	}
	if h := ats.GetHistory(); h != nil {
		if _, err := retry(3, func() (ats.StoredAnalysis, error) {
			return h.Save(ctx, result)
		}); err != nil {
			return fmt.Errorf("history save: %w", err)
		}
		engine.IncrHistoryWrites()
	}
	return nil
}

func (wc *Config) publishStatus(update StatusUpdate) {
	body, err := json.Marshal(update)
	if err != nil {
		slog.Error("worker: marshal status", slog.Any("error", err))
		return
	}
	_, err = retry(3, func() (struct{}, error) {
		ch, err := wc.Conn.Channel()
		if err != nil {
			return struct{}{}, err
		}
		defer ch.Close()
		if _, err := ch.QueueDeclare(wc.ResultQueue, true, false, false, false, nil); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, ch.Publish("", wc.ResultQueue, false, false, amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	})
	if err != nil {
		slog.Error("worker: publish status failed", slog.String("id", update.ID.String()), slog.Any("error", err))
	}
}

// DecodeJob parses and validates a queued analysis job.
func DecodeJob(body []byte) (AnalysisJob, error) {
	var job AnalysisJob
	if err := json.Unmarshal(body, &job); err != nil {
		return AnalysisJob{}, fmt.Errorf("decode job: %w", err)
	}
	if job.ID == uuid.Nil {
		return AnalysisJob{}, fmt.Errorf("decode job: missing id")
	}
	return job, nil
}
