package task

import (
	"context"

	"github.com/haierkeys/note-crud-service/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task 定义任务接口
type Task interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	Spec() string                  // cron 表达式，例如 @every 30s
	IsStartupRun() bool            // 是否立即执行一次
}

// Scheduler 基于 cron 的任务调度器
type Scheduler struct {
	logger *zap.Logger
	cron   *cron.Cron
	tasks  []Task
	sc     *safe_close.SafeClose
}

// NewScheduler 创建任务调度器
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		cron:   cron.New(),
		tasks:  make([]Task, 0),
		sc:     sc,
	}
}

// AddTask 添加任务
func (s *Scheduler) AddTask(task Task) error {
	if _, err := s.cron.AddFunc(task.Spec(), func() { s.run(task, false) }); err != nil {
		return err
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// Start 启动 cron，收到关闭信号后等待正在执行的任务结束
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		if task.IsStartupRun() {
			go s.run(task, true)
		}
	}

	s.cron.Start()

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
		<-s.cron.Stop().Done()
		s.logger.Info("tasks stopped", zap.Int("count", len(s.tasks)))
	})
}

// run 执行一次任务，panic 只记录不扩散
func (s *Scheduler) run(task Task, startup bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.Bool("startupRun", startup),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	s.logger.Debug("task running", zap.String("name", task.Name()), zap.Bool("startupRun", startup))
	if err := task.Run(context.Background()); err != nil {
		s.logger.Warn("task running error",
			zap.String("name", task.Name()),
			zap.Bool("startupRun", startup),
			zap.Error(err))
	}
}
