package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Decision recording happens on the membership query path, so it must be
// thread-safe; a host framework may query from multiple goroutines.
type MetricsCollector interface {
	// RecordDecision records a membership decision for a discovered item.
	//
	// Parameters:
	//   - kind: Item kind the callback was invoked for
	//   - decision: Outcome of the query
	RecordDecision(kind ItemKind, decision Decision)

	// RecordRingFallback records an LPT lookup that fell back to the hash
	// ring because the key had no recorded duration.
	RecordRingFallback()

	// RecordBuildDuration records the time taken by the one-time build phase.
	//
	// Parameters:
	//   - seconds: Build duration in seconds
	RecordBuildDuration(seconds float64)

	// SetBucketTotal sets the accumulated processing time assigned to a node
	// by the LPT partitioner (gauge metric).
	//
	// Parameters:
	//   - node: Node the bucket belongs to
	//   - seconds: Total historical duration assigned to the node
	SetBucketTotal(node NodeID, seconds float64)
}
