package outbound

// TaskDispatcher runs fire-and-forget tasks, typically on a bounded worker pool.
type TaskDispatcher interface {
	Submit(task func()) error
}
