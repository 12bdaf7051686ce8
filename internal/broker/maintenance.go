package broker

import (
	"context"
	"time"
)

// DefaultMaintenanceInterval is how often the expiry sweep runs
const DefaultMaintenanceInterval = 60 * time.Second

// StartMaintenance launches the background expiry sweep. Each tick calls
// CleanupExpired once; failures are logged and never stop the loop. The
// loop exits when ctx is cancelled or StopMaintenance is called.
func (b *Broker) StartMaintenance(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultMaintenanceInterval
	}
	if b.maintenanceStop != nil {
		return
	}
	b.maintenanceStop = make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				removed, err := b.storage.CleanupExpired(ctx)
				if err != nil {
					b.logger.Error("Failed to clean up expired messages", "error", err)
					continue
				}
				if removed > 0 {
					b.logger.Info("Expired messages cleaned up", "count", removed)
				}
			case <-ctx.Done():
				return
			case <-b.maintenanceStop:
				return
			}
		}
	}()

	b.logger.Info("Background maintenance started", "interval", interval)
}

// StopMaintenance stops the background sweep if it is running
func (b *Broker) StopMaintenance() {
	if b.maintenanceStop != nil {
		close(b.maintenanceStop)
		b.maintenanceStop = nil
	}
}
