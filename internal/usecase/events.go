package usecase

import (
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"
)

func publish(p interfaces.IEventPublisher, name string, e entities.Estimate) {
	if p == nil {
		return
	}
	p.Publish(entities.LifecycleEvent{Name: name, EstimateID: e.ID, Status: e.Status})
}
