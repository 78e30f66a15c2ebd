package ports

// InstanceLock guards a resource that only one process may own at a time
type InstanceLock interface {
	// TryLock acquires the lock without blocking, failing with domain.ErrInstanceRunning when held elsewhere
	TryLock() error
	Unlock() error
}
