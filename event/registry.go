package event

var typeToName = map[EventType]string{
	EventEntityDespawned:  "EventEntityDespawned",
	EventKindUnlocked:     "EventKindUnlocked",
	EventLifeLost:         "EventLifeLost",
	EventShieldBroken:     "EventShieldBroken",
	EventGrazed:           "EventGrazed",
	EventScored:           "EventScored",
	EventPulseReleased:    "EventPulseReleased",
	EventPowerUpCollected: "EventPowerUpCollected",
	EventEffectActivated:  "EventEffectActivated",
	EventEffectExpired:    "EventEffectExpired",
	EventEffectQueued:     "EventEffectQueued",
	EventEffectRejected:   "EventEffectRejected",
	EventRunStarted:       "EventRunStarted",
	EventRunEnded:         "EventRunEnded",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[n] = t
	}
	return m
}()

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if n, ok := typeToName[et]; ok {
		return n
	}
	return "EventUnknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// AllTypes returns every emitted event type
func AllTypes() []EventType {
	out := make([]EventType, 0, len(typeToName))
	for t := EventEntityDespawned; t <= EventRunEnded; t++ {
		out = append(out, t)
	}
	return out
}

func (t EventType) String() string {
	return GetEventName(t)
}
