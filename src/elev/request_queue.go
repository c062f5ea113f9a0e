package elev

import (
	"slices"

	"elevsim/src/types"
)

// RequestQueue records accepted requests in arrival order. Traversal never reads it.
type RequestQueue struct {
	requests []types.Request
}

func NewRequestQueue() *RequestQueue {
	return &RequestQueue{}
}

func (q *RequestQueue) Add(req types.Request) {
	q.requests = append(q.requests, req)
}

func (q *RequestQueue) Peek() (types.Request, bool) {
	if len(q.requests) == 0 {
		return types.Request{}, false
	}
	return q.requests[0], true
}

func (q *RequestQueue) Poll() (types.Request, bool) {
	req, ok := q.Peek()
	if ok {
		q.requests = q.requests[1:]
	}
	return req, ok
}

func (q *RequestQueue) HasRequests() bool {
	return len(q.requests) > 0
}

func (q *RequestQueue) Size() int {
	return len(q.requests)
}

func (q *RequestQueue) Clear() {
	q.requests = nil
}

// Requests returns the recorded requests, oldest first.
func (q *RequestQueue) Requests() []types.Request {
	return slices.Clone(q.requests)
}
