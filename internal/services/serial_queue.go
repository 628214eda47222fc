package services

// SerialQueue runs submitted operations one at a time, in submission
// order. Every read-modify-write cycle against the document must go
// through it, otherwise two concurrent mutations could interleave and
// silently drop one another's effect.
type SerialQueue struct {
	jobs chan func()
}

// NewSerialQueue starts the queue's single worker goroutine. Each
// service owns its own queue; there is no shared global.
func NewSerialQueue() *SerialQueue {
	q := &SerialQueue{jobs: make(chan func(), 32)}
	go q.loop()
	return q
}

func (q *SerialQueue) loop() {
	for job := range q.jobs {
		job()
	}
}

// Run submits an operation and blocks until it has executed. Operations
// run strictly one at a time in FIFO order; a failing operation only
// fails its own submitter and never stalls the queue.
func (q *SerialQueue) Run(op func() error) error {
	done := make(chan error, 1)
	q.jobs <- func() { done <- op() }
	return <-done
}
