package config

import (
	"fmt"

	"github.com/bnema/appshell/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file. Session options stay fixed; the
// callbacks registered with OnConfigChange see the reloaded config.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrConfigNotLoaded
	}
	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if m.skipNextReload {
			m.skipNextReload = false
			if err := m.viper.ReadInConfig(); err != nil {
				log.Warn().Err(err).Msg("failed to sync viper after persisting options")
			}
			m.notifyCallbacksLocked()
			return
		}

		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases the lock, then
// notifies. Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback run after each reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}
