package dao

import (
	"context"
	"sync"
)

// watchHub broadcasts a signal to subscribers after every store mutation so
// downstream consumers can re-query without polling.
// watchHub 在每次存储变更后向订阅者广播信号，下游消费者无需轮询即可重新查询。
type watchHub struct {
	mu   sync.Mutex
	seq  int64
	subs map[int64]chan struct{}
}

func newWatchHub() *watchHub {
	return &watchHub{subs: make(map[int64]chan struct{})}
}

func (h *watchHub) subscribe() (int64, chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	ch := make(chan struct{}, 1)
	h.subs[h.seq] = ch
	return h.seq, ch
}

func (h *watchHub) unsubscribe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// notify 非阻塞通知，信号在缓冲中合并
func (h *watchHub) notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a mutation listener released when ctx ends.
// The returned channel is closed on release.
// Subscribe 注册一个变更监听器，在 ctx 结束时释放。返回的通道在释放时关闭。
func (d *Dao) Subscribe(ctx context.Context) <-chan struct{} {
	id, ch := d.watch.subscribe()
	go func() {
		<-ctx.Done()
		d.watch.unsubscribe(id)
	}()
	return ch
}

// Notify 广播一次存储变更信号
func (d *Dao) Notify() {
	d.watch.notify()
}
