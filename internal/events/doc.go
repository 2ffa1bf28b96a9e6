// Package events publishes change notifications for companies, industries
// and invoices.
//
// Services build an EntityEvent after each successful mutation and hand it
// to an EventEmitter. The InMemoryEventEmitter fans events out to every
// registered EventHandler; handlers in this package log events
// (LogHandler) or forward them to a Kafka topic (KafkaPublisher).
//
// Emission is best effort. A handler failure is logged by the emitter and
// never turns a successful request into a failed one.
package events
