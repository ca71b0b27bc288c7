package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/notify"
	"github.com/adamspd/InterviewCoach/utils"
	"github.com/hibiken/asynq"
)

const (
	TypeDeliverReport = "report:deliver"
)

type JobManager struct {
	client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

// ReportPayload carries a finished interview's report to the delivery worker.
type ReportPayload struct {
	To           string                `json:"to"`
	SessionID    string                `json:"session_id"`
	ProblemTitle string                `json:"problem_title"`
	Report       models.FeedbackReport `json:"report"`
}

func NewJobManager(redisURL string) *JobManager {
	addr := strings.TrimPrefix(redisURL, "redis://")
	redisOpt := asynq.RedisClientOpt{
		Addr: addr,
	}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6, // Report deliveries requested by the candidate
			"default":  3,
			"low":      1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			utils.LogError("Job failed: type=%s error=%v", task.Type(), err)
		}),
		Logger: &AsynqLogger{},
	})

	mux := asynq.NewServeMux()

	return &JobManager{
		client: client,
		server: server,
		mux:    mux,
	}
}

func (jm *JobManager) RegisterHandlers(emailService *notify.EmailService) {
	jm.mux.HandleFunc(TypeDeliverReport, jm.handleDeliverReport(emailService))
}

func (jm *JobManager) Start() error {
	utils.LogStartup("Starting job queue worker...")
	return jm.server.Run(jm.mux)
}

func (jm *JobManager) Stop() {
	utils.LogShutdown("Stopping job queue...")
	jm.server.Stop()
	jm.server.Shutdown()
	jm.client.Close()
}

// QueueReportDelivery enqueues the emailed copy of a feedback report. The
// candidate asked for it explicitly, so it runs on the critical queue.
func (jm *JobManager) QueueReportDelivery(to, sessionID, problemTitle string, report *models.FeedbackReport) error {
	payload := ReportPayload{
		To:           to,
		SessionID:    sessionID,
		ProblemTitle: problemTitle,
		Report:       *report,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal report payload: %w", err)
	}

	task := asynq.NewTask(TypeDeliverReport, payloadBytes)

	opts := []asynq.Option{
		asynq.Queue("critical"),
		asynq.MaxRetry(5),
		asynq.Timeout(120 * time.Second),
	}

	info, err := jm.client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue report delivery: %w", err)
	}

	utils.LogInfo("Queued report delivery: ID=%s session=%s to=%s", info.ID, sessionID, to)
	return nil
}

func (jm *JobManager) handleDeliverReport(emailService *notify.EmailService) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload ReportPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal report payload: %w", err)
		}

		utils.LogInfo("Processing report delivery: session=%s to=%s grade=%s",
			payload.SessionID, payload.To, payload.Report.OverallGrade)

		subject, body := emailService.BuildReportEmail(&payload.Report)
		if err := emailService.SendEmail(payload.To, subject, body); err != nil {
			return fmt.Errorf("failed to deliver report for session %s to %s: %w",
				payload.SessionID, payload.To, err)
		}

		utils.LogInfo("Successfully delivered report for session %s", payload.SessionID)
		return nil
	}
}

// Custom logger that routes asynq output through the shared log wrappers
type AsynqLogger struct{}

func (l *AsynqLogger) Debug(args ...interface{}) {
	utils.LogDebug(fmt.Sprint(args...))
}

func (l *AsynqLogger) Info(args ...interface{}) {
	utils.LogInfo(fmt.Sprint(args...))
}

func (l *AsynqLogger) Warn(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}

func (l *AsynqLogger) Error(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}

func (l *AsynqLogger) Fatal(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}
