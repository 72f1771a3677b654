package shutdown

// The daemon stops background workers from the highest priority down, so the chain
// client is closed only after the servers that use it are gone.
const (
	PriorityChain = iota
	PriorityWebAPI
	PriorityPrometheus
)
