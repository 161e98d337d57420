package cache

import "sync"

// UnknownChannel is returned for channel ids with no mapping.
const UnknownChannel = "Unknown"

// Built-in channel type ids of the ordering surfaces.
var defaultChannels = map[string]string{
	"0199947b-b0a0-7885-a32a-4cb744df96a5": "Website",
	"0199947b-b0a0-7885-a32a-5686afc4481e": "App",
	"0199947b-b0a0-7885-a32a-5f115333f817": "WhatsApp",
	"0199947b-b0a0-7885-a32a-67a4a63bf846": "Voice",
}

var (
	channelsOnce sync.Once
	channels     map[string]string
)

// InitChannels seeds the channel lookup once for the process lifetime.
// Config overrides are merged over the built-in defaults. Subsequent
// calls are no-ops; the map is read-only afterwards.
func InitChannels(overrides map[string]string) {
	channelsOnce.Do(func() {
		m := make(map[string]string, len(defaultChannels)+len(overrides))
		for id, name := range defaultChannels {
			m[id] = name
		}
		for id, name := range overrides {
			m[id] = name
		}
		channels = m
	})
}

// ChannelName resolves a channel type id to its human-readable label.
func ChannelName(id string) string {
	InitChannels(nil)
	if name, ok := channels[id]; ok {
		return name
	}
	return UnknownChannel
}

// ChannelMapping returns a copy of the full mapping for diagnostics.
func ChannelMapping() map[string]string {
	InitChannels(nil)
	m := make(map[string]string, len(channels))
	for id, name := range channels {
		m[id] = name
	}
	return m
}
