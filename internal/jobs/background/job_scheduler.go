package background

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"renti/internal/jobs"
	"renti/internal/services"
)

// Job names.
const (
	JobGreetingRefresh      = "greeting-refresh"
	JobLeaseExpiryReminders = "lease-expiry-reminders"
	JobOverdueRentReminders = "overdue-rent-reminders"
)

// Intervals configures how often each job runs.
type Intervals struct {
	Greeting  time.Duration
	Reminders time.Duration
}

// JobStatus describes one registered job.
type JobStatus struct {
	Name    string    `json:"name"`
	NextRun time.Time `json:"next_run"`
	LastRun time.Time `json:"last_run"`
}

// JobScheduler runs the periodic dashboard jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	greeting  services.GreetingService
	reminders *jobs.ReminderService
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

// NewJobScheduler creates a scheduler with every job registered. Nothing
// runs until Start.
func NewJobScheduler(intervals Intervals, clock clockwork.Clock, greeting services.GreetingService, reminders *jobs.ReminderService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		greeting:  greeting,
		reminders: reminders,
		jobs:      make(map[string]gocron.Job),
	}

	if err := js.registerJobs(intervals); err != nil {
		scheduler.Shutdown()
		return nil, err
	}
	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("INFO: starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("INFO: stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs(intervals Intervals) error {
	if err := js.addJob(JobGreetingRefresh, intervals.Greeting, js.refreshGreeting); err != nil {
		return err
	}
	if err := js.addJob(JobLeaseExpiryReminders, intervals.Reminders, js.sendLeaseExpiryReminders); err != nil {
		return err
	}
	if err := js.addJob(JobOverdueRentReminders, intervals.Reminders, js.sendOverdueRentReminders); err != nil {
		return err
	}
	log.Printf("INFO: registered %d background jobs", len(js.jobs))
	return nil
}

func (js *JobScheduler) addJob(name string, interval time.Duration, task func()) error {
	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s job: %w", name, err)
	}

	js.mu.Lock()
	js.jobs[name] = job
	js.mu.Unlock()
	return nil
}

func (js *JobScheduler) refreshGreeting() {
	js.greeting.Refresh()
}

func (js *JobScheduler) sendLeaseExpiryReminders() {
	sent, err := js.reminders.RunLeaseExpiry(context.Background())
	if err != nil {
		log.Printf("WARN: lease expiry reminders failed: %v", err)
		return
	}
	log.Printf("INFO: sent %d lease expiry reminders", sent)
}

func (js *JobScheduler) sendOverdueRentReminders() {
	sent, err := js.reminders.RunOverdueRent(context.Background())
	if err != nil {
		log.Printf("WARN: overdue rent reminders failed: %v", err)
		return
	}
	log.Printf("INFO: sent %d overdue rent reminders", sent)
}

// RunNow triggers a job outside its schedule.
func (js *JobScheduler) RunNow(name string) error {
	js.mu.RLock()
	job, exists := js.jobs[name]
	js.mu.RUnlock()
	if !exists {
		return fmt.Errorf("job %q: %w", name, ErrUnknownJob)
	}
	return job.RunNow()
}

// GetJobStatus reports every job sorted by name.
func (js *JobScheduler) GetJobStatus() []JobStatus {
	js.mu.RLock()
	defer js.mu.RUnlock()

	statuses := make([]JobStatus, 0, len(js.jobs))
	for name, job := range js.jobs {
		status := JobStatus{Name: name}
		if next, err := job.NextRun(); err == nil {
			status.NextRun = next
		}
		if last, err := job.LastRun(); err == nil {
			status.LastRun = last
		}
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}
