package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// DefaultBufferSize is the publisher queue length used when none is configured.
const DefaultBufferSize = 1000

// closeTimeout bounds how long Close spends flushing queued events.
const closeTimeout = 5 * time.Second

// ErrPublisherClosed is returned by HandleEvent after Close.
var ErrPublisherClosed = errors.New("kafka publisher closed")

var jsonMarshal = json.Marshal

// KafkaWriter is the subset of *kafka.Writer used by KafkaPublisher.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher is an EventHandler that forwards events to a Kafka topic.
// HandleEvent only enqueues; a single background goroutine writes messages
// keyed by the entity key. When the queue is full the event is dropped.
type KafkaPublisher struct {
	writer KafkaWriter
	events chan *EntityEvent
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewKafkaPublisher creates a publisher writing to topic on brokers and
// starts its write loop. Topics are created on first write when the broker
// allows it.
func NewKafkaPublisher(
	brokers []string,
	topic string,
	bufferSize int,
	logger *slog.Logger,
) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
	}
	return newKafkaPublisher(writer, bufferSize, logger)
}

func newKafkaPublisher(writer KafkaWriter, bufferSize int, logger *slog.Logger) *KafkaPublisher {
	if writer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("writer cannot be nil")
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &KafkaPublisher{
		writer: writer,
		events: make(chan *EntityEvent, bufferSize),
		logger: logger.With("component", "kafka_publisher"),
		done:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.eventLoop()
	return p
}

// HandleEvent implements EventHandler. It never blocks.
func (p *KafkaPublisher) HandleEvent(_ context.Context, event *EntityEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.events <- event:
	default:
		p.logger.Warn("kafka publisher queue full, dropping event",
			"event_id", event.ID,
			"event_type", event.Type,
			"key", event.Key)
	}
	return nil
}

func (p *KafkaPublisher) eventLoop() {
	defer p.wg.Done()
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.done:
			p.drain()
			return
		}
	}
}

// drain writes whatever is still queued, bounded by closeTimeout.
func (p *KafkaPublisher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	for {
		select {
		case event := <-p.events:
			p.sendEvent(ctx, event)
		default:
			return
		}
	}
}

func (p *KafkaPublisher) sendEvent(ctx context.Context, event *EntityEvent) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("failed to serialize event",
			"error", err,
			"event_id", event.ID)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "entity", Value: []byte(event.Entity)},
		},
		Time: event.CreatedAt,
	})
	if err != nil {
		p.logger.Error("failed to produce event",
			"error", err,
			"event_id", event.ID,
			"event_type", event.Type)
		return
	}

	p.logger.Debug("event produced",
		"event_id", event.ID,
		"event_type", event.Type)
}

// Close stops accepting events, flushes the queue and closes the writer.
// It is safe to call more than once.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
	if err := p.writer.Close(); err != nil {
		p.logger.Error("failed to close kafka writer", "error", err)
		return err
	}
	return nil
}
