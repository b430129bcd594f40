package navigation

// Pending is one queued request and the key it was submitted under.
type Pending[K comparable] struct {
	Key     K
	Request Request
}

// RequestQueue holds at most one request per key, in first-submission order.
// It is owned by the tick loop and is not safe for concurrent use.
type RequestQueue[K comparable] struct {
	order []K
	byKey map[K]Request
}

func NewRequestQueue[K comparable]() *RequestQueue[K] {
	return &RequestQueue[K]{byKey: make(map[K]Request)}
}

// Submit queues req for key. A newer submission for a key already queued
// replaces the old request but keeps its place in line.
func (q *RequestQueue[K]) Submit(key K, req Request) {
	if q.byKey == nil {
		q.byKey = make(map[K]Request)
	}
	if _, ok := q.byKey[key]; !ok {
		q.order = append(q.order, key)
	}
	q.byKey[key] = req
}

// Drain returns every pending request in queue order and empties the queue.
func (q *RequestQueue[K]) Drain() []Pending[K] {
	if len(q.order) == 0 {
		return nil
	}
	out := make([]Pending[K], 0, len(q.order))
	for _, key := range q.order {
		out = append(out, Pending[K]{Key: key, Request: q.byKey[key]})
	}
	q.order = nil
	clear(q.byKey)
	return out
}

// Requeue puts items back at the front of the queue in their given order.
// A key that was resubmitted in the meantime keeps the newer request.
func (q *RequestQueue[K]) Requeue(items []Pending[K]) {
	if len(items) == 0 {
		return
	}
	if q.byKey == nil {
		q.byKey = make(map[K]Request)
	}
	front := make([]K, 0, len(items)+len(q.order))
	for _, it := range items {
		if _, ok := q.byKey[it.Key]; ok {
			continue
		}
		q.byKey[it.Key] = it.Request
		front = append(front, it.Key)
	}
	for _, key := range q.order {
		if !containsKey(front, key) {
			front = append(front, key)
		}
	}
	q.order = front
}

// Cancel drops the queued request for key, if any.
func (q *RequestQueue[K]) Cancel(key K) bool {
	if _, ok := q.byKey[key]; !ok {
		return false
	}
	delete(q.byKey, key)
	for i, k := range q.order {
		if k == key {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of queued keys.
func (q *RequestQueue[K]) Len() int {
	return len(q.order)
}

func containsKey[K comparable](keys []K, key K) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
