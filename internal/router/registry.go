package router

// registry fixes the valid intents and their enumeration order. The order
// matters: the bare-prefix parser fallback tries labels in this order.
var registry = []Intent{
	IntentCrypto,
	IntentStock,
	IntentWeather,
	IntentWeb,
}

// All returns the valid intents in registry order.
func All() []Intent {
	out := make([]Intent, len(registry))
	copy(out, registry)
	return out
}

// IsValid reports whether label names a known intent. It is the single
// gate between "the model said X" and "the system will act on X".
func IsValid(label Intent) bool {
	for _, intent := range registry {
		if label == intent {
			return true
		}
	}
	return false
}
