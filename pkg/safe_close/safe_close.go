// Package safe_close 提供关闭信号分发，协调多个子服务的优雅退出
package safe_close

import (
	"sync"
)

// SafeClose 关闭协调器
// 子服务通过 Attach 注册，收到关闭信号后各自清理并调用 done
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

// NewSafeClose 创建关闭协调器实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach registers a sub-service lifecycle function and runs it.
// Attach 注册子服务生命周期函数并运行。
// f 必须在完成清理后调用 done，并监听 closeSignal
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go f(s.wg.Done, s.closeSignal)
}

// SendCloseSignal 广播关闭信号，首个非 nil 错误会被保留
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed 等待所有子服务退出，返回触发关闭的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
