package recorder

// NoopRecorder discards all events. Used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordLookup(_ *LookupEvent) error { return nil }
func (n *NoopRecorder) RecordWarmRun(_ *WarmRun) error    { return nil }
func (n *NoopRecorder) Close() error                      { return nil }
