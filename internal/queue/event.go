// Package queue defines the domain events published to RabbitMQ and the
// publisher that delivers them.
package queue

// ProjectPromotedEvent is emitted after a pending project has been moved
// into the active set. Consumers (notification workers, reporting jobs)
// receive it on the "project.promoted" queue.
type ProjectPromotedEvent struct {
	ProjectID   uint64 `json:"project_id"`
	ProjectName string `json:"project_name"`
	PromotedAt  string `json:"promoted_at"` // RFC 3339 UTC
}
