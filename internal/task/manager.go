package task

import (
	"github.com/haierkeys/note-crud-service/pkg/safe_close"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
	deps      Deps
}

// NewManager 创建任务管理器
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose, deps Deps) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
		deps:      deps,
	}
}

// RegisterTasks 实例化所有已注册的任务
func (m *Manager) RegisterTasks() error {
	for _, factory := range GetFactories() {
		t, err := factory(m.deps)
		if err != nil {
			return errors.Wrap(err, "create task")
		}
		if t == nil {
			continue
		}
		if err := m.scheduler.AddTask(t); err != nil {
			return errors.Wrapf(err, "schedule task %s", t.Name())
		}
		m.logger.Info("task registered", zap.String("name", t.Name()), zap.String("spec", t.Spec()))
	}
	return nil
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
