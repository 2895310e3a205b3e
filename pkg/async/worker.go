package async

import (
	"context"
	"sync"
	"time"

	"freenotice/pkg/logger"
)

// Task 비동기 작업
type Task struct {
	Name    string
	Handler func(ctx context.Context) error
	Timeout time.Duration
}

// Worker 비동기 작업 처리기.
// 요청 경로에서 분리해야 하는 부수 작업(캐시 무효화 등)을 처리한다.
type Worker struct {
	taskQueue chan Task
	logger    *logger.Logger
	wg        sync.WaitGroup
}

// NewWorker 작업 큐 크기를 지정해 워커를 생성한다.
func NewWorker(queueSize int, logger *logger.Logger) *Worker {
	return &Worker{
		taskQueue: make(chan Task, queueSize),
		logger:    logger,
	}
}

// Start 워커 고루틴을 시작한다.
func (w *Worker) Start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.run()
	}
}

// Stop 큐를 닫고 남은 작업이 끝날 때까지 기다린다.
func (w *Worker) Stop() {
	close(w.taskQueue)
	w.wg.Wait()
}

// Submit 작업을 큐에 넣는다. 큐가 가득 차면 버리고 경고만 남긴다.
func (w *Worker) Submit(task Task) {
	select {
	case w.taskQueue <- task:
	default:
		w.logger.Warn("작업 큐가 가득 차 작업을 버림", "task", task.Name)
	}
}

func (w *Worker) run() {
	defer w.wg.Done()

	for task := range w.taskQueue {
		w.execute(task)
	}
}

func (w *Worker) execute(task Task) {
	ctx := context.Background()
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := task.Handler(ctx); err != nil {
		w.logger.Error("비동기 작업 실패", "task", task.Name, "error", err)
		return
	}
	w.logger.Debug("비동기 작업 완료", "task", task.Name, "duration", time.Since(start))
}
