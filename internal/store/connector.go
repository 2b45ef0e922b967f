// Package store owns the single long-lived connection to the document store.
// A connection is attempted exactly once; on failure the handle stays unavailable
// until the process is restarted.
// Package store 持有到文档存储的唯一长连接，只尝试连接一次，失败后句柄保持不可用
package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrUnavailable is returned by Handle while the store is not connected
var ErrUnavailable = domain.ErrUnavailable

// State connection state
// State 连接状态
type State int32

const (
	StateConnecting State = iota
	StateConnected
	StateUnavailable
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateUnavailable:
		return "unavailable"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Dialer opens the store and returns the collection handle plus the functions
// used to ping and release it.
// Dialer 打开存储，返回集合句柄以及探活与释放函数
type Dialer[H any] func(ctx context.Context) (handle *H, ping func(context.Context) error, closeFn func(context.Context) error, err error)

// Status is the read-only view used by health checks and probes
// Status 供健康检查与探测使用的只读视图
type Status interface {
	Driver() string
	State() State
	Ping(ctx context.Context) error
}

// Lifecycle is satisfied by every Connector whatever its handle type
// Lifecycle 与句柄类型无关的连接器生命周期
type Lifecycle interface {
	Status
	Open(ctx context.Context) error
	Close(ctx context.Context) error
}

// Connector holds one handle of type H
// Connector 持有一个类型为 H 的句柄
type Connector[H any] struct {
	driver  string
	timeout time.Duration
	dial    Dialer[H]
	logger  *zap.Logger

	state  atomic.Int32
	handle atomic.Pointer[H]

	mu      sync.Mutex
	opened  bool
	ping    func(context.Context) error
	closeFn func(context.Context) error
}

// NewConnector creates a connector in the connecting state; nothing is dialed until Open
// NewConnector 创建处于 connecting 状态的连接器，Open 之前不会发起连接
func NewConnector[H any](driver string, timeout time.Duration, dial Dialer[H], lg *zap.Logger) *Connector[H] {
	if lg == nil {
		lg = zap.NewNop()
	}
	c := &Connector[H]{
		driver:  driver,
		timeout: timeout,
		dial:    dial,
		logger:  lg,
	}
	c.state.Store(int32(StateConnecting))
	return c
}

// Open performs the single connection attempt. A failure is logged and leaves the
// connector unavailable; calling Open again is a no-op.
// Open 执行唯一一次连接尝试，失败时记录日志并保持不可用；重复调用无效
func (c *Connector[H]) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opened {
		return nil
	}
	c.opened = true

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	handle, ping, closeFn, err := c.dial(ctx)
	if err != nil {
		c.state.Store(int32(StateUnavailable))
		c.logger.Error("store connect failed, requests will fail until restart",
			zap.String(logger.FieldDriver, c.driver),
			zap.Duration(logger.FieldDuration, time.Since(start)),
			zap.Error(err))
		return errors.Wrapf(err, "connect %s store", c.driver)
	}

	c.ping = ping
	c.closeFn = closeFn
	c.handle.Store(handle)
	c.state.Store(int32(StateConnected))

	c.logger.Info("store connected",
		zap.String(logger.FieldDriver, c.driver),
		zap.Duration(logger.FieldDuration, time.Since(start)))
	return nil
}

// Handle returns the collection handle or ErrUnavailable
// Handle 返回集合句柄，不可用时返回 ErrUnavailable
func (c *Connector[H]) Handle() (*H, error) {
	if State(c.state.Load()) != StateConnected {
		return nil, ErrUnavailable
	}
	h := c.handle.Load()
	if h == nil {
		return nil, ErrUnavailable
	}
	return h, nil
}

func (c *Connector[H]) Driver() string {
	return c.driver
}

func (c *Connector[H]) State() State {
	return State(c.state.Load())
}

// Ping checks an open handle; it never reconnects
// Ping 检查已打开的句柄，不会重连
func (c *Connector[H]) Ping(ctx context.Context) error {
	if _, err := c.Handle(); err != nil {
		return err
	}
	c.mu.Lock()
	ping := c.ping
	c.mu.Unlock()
	if ping == nil {
		return nil
	}
	return ping(ctx)
}

// Close releases the handle; later calls to Handle return ErrUnavailable
// Close 释放句柄，之后 Handle 返回 ErrUnavailable
func (c *Connector[H]) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasConnected := State(c.state.Load()) == StateConnected
	c.opened = true
	c.state.Store(int32(StateClosed))
	c.handle.Store(nil)

	if !wasConnected || c.closeFn == nil {
		return nil
	}
	if err := c.closeFn(ctx); err != nil {
		return errors.Wrapf(err, "close %s store", c.driver)
	}
	c.logger.Info("store connection closed", zap.String(logger.FieldDriver, c.driver))
	return nil
}
