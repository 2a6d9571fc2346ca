package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"denku.com/billing/internal/billing"
	"denku.com/billing/models"
	"denku.com/billing/utils"

	_ "github.com/go-sql-driver/mysql"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var rdb *redis.Client

func main() {
	// 1. INITIALIZE REDIS
	redisURL := os.Getenv("REDIS_URL")
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Critical: Failed to parse REDIS_URL: %v", err)
	}
	rdb = redis.NewClient(opt)

	// Test Redis Connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Critical: Could not connect to Redis: %v", err)
	}

	// 2. SETUP SCHEDULER
	c := cron.New()

	// Close the previous billing month shortly after it ends
	_, _ = c.AddFunc("0 2 1 * *", func() {
		log.Println("Triggering monthly invoice close...")
		runSweepDistributor(billing.TaskCloseMonth)
	})

	// Overage evaluation runs often: threshold crossings and cap breaches
	// should pause a workspace within minutes
	_, _ = c.AddFunc("*/15 * * * *", func() {
		runSweepDistributor(billing.TaskEvaluateOverage)
	})

	// Safety-net reclaim for leases whose call-end webhook was lost
	_, _ = c.AddFunc("*/5 * * * *", func() {
		runSweepDistributor(billing.TaskReclaimLeases)
	})

	// Converge telephony bindings with stored workspace status
	_, _ = c.AddFunc("0 * * * *", func() {
		runSweepDistributor(billing.TaskEnforceBinding)
	})

	// DEBUG: Every Minute (only if DISTRIBUTOR_DEBUG is set to 1)
	if os.Getenv("DISTRIBUTOR_DEBUG") == "1" {
		_, _ = c.AddFunc("* * * * *", func() {
			log.Println("[DEBUG] Running per-minute test trigger...")
			runSweepDistributor(billing.TaskEvaluateOverage)
		})
	}

	log.Printf("Billing Task Distributor started. Connected to Redis at: %s", opt.Addr)
	c.Start()

	// Keep the app running
	select {}
}

func lockWindow(job string) (string, time.Duration) {
	switch job {
	case billing.TaskCloseMonth:
		return time.Now().Format("2006-01"), 23 * time.Hour
	case billing.TaskEnforceBinding:
		return time.Now().Format("2006-01-02-15"), 55 * time.Minute
	default:
		return time.Now().Format("2006-01-02-15:04"), 4 * time.Minute
	}
}

func runSweepDistributor(job string) {
	// 2-hour safety timeout for the entire process
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	// --- GLOBAL LOCK LOGIC ---
	lockKeySuffix, lockTTL := lockWindow(job)
	globalLockKey := fmt.Sprintf("sweep_run_lock:%s:%s", job, lockKeySuffix)

	// SET NX: Only one instance/replica will succeed here
	locked, err := rdb.SetNX(ctx, globalLockKey, "running", lockTTL).Result()
	if err != nil || !locked {
		log.Printf("[%s] Skip: Lock %s held by another instance.", job, globalLockKey)
		return
	}

	log.Printf("[%s] Lock Acquired. Processing distribution...", job)

	// --- CONNECTIONS ---
	db, _ := utils.GetDBConnection()

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		log.Printf("[%s] RabbitMQ connection failed: %v", job, err)
		return
	}
	defer conn.Close()

	ch, _ := conn.Channel()
	defer ch.Close()

	// Put channel in Confirm Mode
	if err := ch.Confirm(false); err != nil {
		log.Printf("[%s] Could not enable RabbitMQ confirms: %v", job, err)
		return
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	q, _ := ch.QueueDeclare("billing_tasks", true, false, false, false, nil)

	month := utils.BillingMonth(time.Now())
	if job == billing.TaskCloseMonth {
		month = utils.PreviousBillingMonth(time.Now())
	}

	// Lease reclamation is one global task, not per workspace
	if job == billing.TaskReclaimLeases {
		task := models.SweepTask{Job: job, BillingMonth: month, RunID: globalLockKey}
		publishTask(ctx, ch, q.Name, confirms, task, "")
		return
	}

	// --- DATABASE QUERY ---
	rows, err := db.Query("SELECT id FROM workspaces")
	if err != nil {
		log.Printf("[%s] DB Query Error: %v", job, err)
		return
	}
	defer rows.Close()

	// --- DISTRIBUTION LOOP ---
	count := 0
	for rows.Next() {
		var task models.SweepTask
		if err := rows.Scan(&task.WorkspaceID); err != nil {
			continue
		}

		// DEDUPLICATION: Ensures no workspace is queued twice in the same cycle
		dedupeKey := fmt.Sprintf("queued:%s:%d:%s", job, task.WorkspaceID, lockKeySuffix)
		task.Job = job
		task.BillingMonth = month
		task.RunID = globalLockKey

		if publishTask(ctx, ch, q.Name, confirms, task, dedupeKey) {
			count++
		}
	}

	log.Printf("[%s] Distribution Finished. Total Queued: %d", job, count)
}

func publishTask(ctx context.Context, ch *amqp.Channel, queue string, confirms chan amqp.Confirmation, task models.SweepTask, dedupeKey string) bool {
	if dedupeKey != "" {
		isNew, _ := rdb.SetNX(ctx, dedupeKey, "true", 31*24*time.Hour).Result()
		if !isNew {
			return false
		}
	}

	body, _ := json.Marshal(task)
	err := ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		if dedupeKey != "" {
			rdb.Del(ctx, dedupeKey) // Failed to publish, allow retry
		}
		log.Printf("Publish error for workspace %d: %v", task.WorkspaceID, err)
		return false
	}

	// Confirm receipt by RabbitMQ
	select {
	case confirmed := <-confirms:
		if !confirmed.Ack {
			if dedupeKey != "" {
				rdb.Del(ctx, dedupeKey)
			}
			log.Printf("RabbitMQ NACK for %d", task.WorkspaceID)
			return false
		}
		return true
	case <-time.After(5 * time.Second):
		if dedupeKey != "" {
			rdb.Del(ctx, dedupeKey)
		}
		log.Printf("Timeout waiting for RabbitMQ ACK for %d", task.WorkspaceID)
		return false
	}
}
