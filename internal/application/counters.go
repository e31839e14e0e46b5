package application

// Counter hands out capture indices. Next computes last persisted + 1
// without writing anything; Commit persists the value only after the
// capture succeeded, so a failed capture never bumps the stored counter
// and the next success reuses the same index.
type Counter interface {
	Next() (int, error)
	Commit(value int) error
}
