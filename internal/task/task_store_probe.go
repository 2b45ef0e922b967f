package task

import (
	"context"
	"fmt"
	"time"

	"github.com/haierkeys/note-crud-service/internal/store"
	"github.com/haierkeys/note-crud-service/pkg/metrics"
)

// storeProbeTimeout 单次探活超时
const storeProbeTimeout = 5 * time.Second

func init() {
	Register(NewStoreProbeTask)
}

// StoreProbeTask 定期探测存储连接并更新 store_up 指标
// 只探测，不重连
type StoreProbeTask struct {
	store    store.Lifecycle
	metrics  *metrics.Metrics
	interval time.Duration
}

// NewStoreProbeTask 间隔为 0 时任务关闭
func NewStoreProbeTask(deps Deps) (Task, error) {
	if deps.ProbeInterval <= 0 || deps.Store == nil {
		return nil, nil
	}
	return &StoreProbeTask{
		store:    deps.Store,
		metrics:  deps.Metrics,
		interval: deps.ProbeInterval,
	}, nil
}

func (t *StoreProbeTask) Name() string {
	return "StoreProbe"
}

func (t *StoreProbeTask) Spec() string {
	return fmt.Sprintf("@every %s", t.interval)
}

func (t *StoreProbeTask) IsStartupRun() bool {
	return false
}

// Run 连接未建立时直接记为不可用
func (t *StoreProbeTask) Run(ctx context.Context) error {
	if t.store.State() != store.StateConnected {
		t.setUp(false)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeProbeTimeout)
	defer cancel()

	err := t.store.Ping(ctx)
	t.setUp(err == nil)
	return err
}

func (t *StoreProbeTask) setUp(up bool) {
	if t.metrics != nil {
		t.metrics.SetStoreUp(up)
	}
}
