package handlers

import (
	"sync"

	intconfig "github.com/AgbediaSamuel/traverse-backend-wa/internal/config"
)

var (
	cfgMu sync.RWMutex
	cfg   intconfig.Env
)

// Configure stashes the loaded environment for handlers that need the JWT
// secret or the viewer gate settings.
func Configure(env intconfig.Env) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	cfg = env
}

func currentEnv() intconfig.Env {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg
}
