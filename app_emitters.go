package main

import (
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// emitProgress forwards seeding progress to the frontend. It is the
// callback registered on the progress sink at startup.
func (a *App) emitProgress(current, total int, message string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, "seed:progress", map[string]interface{}{
		"current": current,
		"total":   total,
		"message": message,
	})
}

// emitSeedComplete tells the frontend the catalog is ready to browse.
func (a *App) emitSeedComplete() {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, "seed:status", map[string]interface{}{
		"ready": true,
	})
}

// emitSeedError surfaces a fatal store or seeding failure. These are the
// "try again" conditions; validation failures travel back through the
// bound method's error return instead.
func (a *App) emitSeedError(err error) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, "seed:status", map[string]interface{}{
		"ready": false,
		"error": err.Error(),
	})
}
