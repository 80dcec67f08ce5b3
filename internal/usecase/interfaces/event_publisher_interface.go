package interfaces

import "hauling_pros/internal/domain/entities"

// IEventPublisher fans lifecycle events out to live admin dashboards.
// Publishing is fire-and-forget.
type IEventPublisher interface {
	Publish(event entities.LifecycleEvent)
}
