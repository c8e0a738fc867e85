package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/srishti-3/CV-Align/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(appID uuid.UUID)
}

type worker struct {
	appRepo          repositories.ApplicationRepository
	evaluatorService EvaluatorService
	jobQueue         chan uuid.UUID
	concurrency      int
	wg               sync.WaitGroup
	stopChan         chan struct{}
}

func NewWorker(
	appRepo repositories.ApplicationRepository,
	evaluatorService EvaluatorService,
	concurrency int,
) Worker {
	return &worker{
		appRepo:          appRepo,
		evaluatorService: evaluatorService,
		jobQueue:         make(chan uuid.UUID, 100),
		concurrency:      concurrency,
		stopChan:         make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	// Start worker goroutines
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Start polling for pending applications
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(appID uuid.UUID) {
	select {
	case w.jobQueue <- appID:
		log.Printf("📥 Application %s enqueued\n", appID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue application %s\n", appID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing jobs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case appID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing application %s\n", workerID, appID)
			if err := w.evaluatorService.EvaluateApplication(ctx, appID); err != nil {
				log.Printf("❌ Worker #%d failed to process application %s: %v\n", workerID, appID, err)
			} else {
				log.Printf("✅ Worker #%d completed application %s\n", workerID, appID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	log.Println("🔄 Starting pending jobs poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending jobs poller stopped")
			return
		case <-ticker.C:
			pendingJobs, err := w.appRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending applications: %v\n", err)
				continue
			}

			if len(pendingJobs) > 0 {
				log.Printf("📋 Found %d pending applications\n", len(pendingJobs))
			}

			for _, app := range pendingJobs {
				w.EnqueueJob(app.ID)
			}
		}
	}
}
