package queue

import (
	wq "github.com/Workiva/go-datastructures/queue"
)

// Queue 是 BFS 用的 FIFO 队列，底层为 go-datastructures 的 queue.Queue。
type Queue[T any] struct {
	q *wq.Queue
}

// New 创建队列，hint 为预估容量。
func New[T any](hint int) *Queue[T] {
	return &Queue[T]{q: wq.New(int64(max(hint, 1)))}
}

func (q *Queue[T]) Enqueue(item T) {
	// 只有 Dispose 之后 Put 才会失败，这里不会发生。
	_ = q.q.Put(item)
}

// Dequeue 取出队首元素；队列为空时 ok=false，不阻塞。
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if q.q.Empty() {
		return item, false
	}
	items, err := q.q.Get(1)
	if err != nil || len(items) == 0 {
		return item, false
	}
	return items[0].(T), true
}

func (q *Queue[T]) Empty() bool {
	return q.q.Empty()
}

func (q *Queue[T]) Len() int {
	return int(q.q.Len())
}

// Dispose 释放底层队列，之后不可再使用。
func (q *Queue[T]) Dispose() {
	q.q.Dispose()
}
