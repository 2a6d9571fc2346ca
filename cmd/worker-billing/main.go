package main

import (
	"encoding/json"
	"log"
	"os"

	"denku.com/billing/handlers/telephony"
	billingtasks "denku.com/billing/internal/billing"
	"denku.com/billing/internal/concurrency"
	"denku.com/billing/internal/invoicing"
	"denku.com/billing/internal/overage"
	"denku.com/billing/internal/workspace"
	"denku.com/billing/models"
	"denku.com/billing/repository"
	"denku.com/billing/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	utils.InitLogger(logDestination)

	db, _ := utils.GetDBConnection()
	wRepo := repository.NewWorkspaceRepository(db)
	lRepo := repository.NewLeaseRepository(db)
	aRepo := repository.NewAuditRepository(db)
	runRepo := repository.NewInvoiceRunRepository(db)
	oRepo := repository.NewOverageRepository(db)
	uRepo := repository.NewUsageRepository()
	pRepo := repository.NewPaymentRepository(db)

	ariClient, err := utils.CreateARIConnection()
	if err != nil {
		log.Printf("ARI unavailable, hard-cap pauses will not hang up live calls: %v", err)
		ariClient = nil
	}
	th := telephony.NewARITelephonyHandler(db, ariClient)

	limiter := concurrency.NewService(lRepo, wRepo, aRepo)
	orchestrator := workspace.NewService(wRepo, lRepo, aRepo, th)
	invoiceSvc := invoicing.NewService(runRepo, wRepo, uRepo, pRepo, orchestrator)
	overageSvc := overage.NewService(oRepo, wRepo, uRepo, pRepo, orchestrator)
	taskSvc := billingtasks.NewTaskService(db, invoiceSvc, overageSvc, orchestrator, limiter.ReleaseExpiredLeases)

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	// Prefetch(1) ensures the worker doesn't hog all tasks if one is slow
	ch.Qos(1, 0, false)

	tasks, err := ch.Consume("billing_tasks", "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}
	events, err := ch.Consume("billing_events", "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	log.Println("Billing worker ready. Waiting for tasks and provider events...")

	go func() {
		for d := range events {
			var task models.BillingEventTask
			if err := json.Unmarshal(d.Body, &task); err != nil {
				log.Printf("Dropping malformed provider event: %v", err)
				d.Ack(false)
				continue
			}
			if err := taskSvc.ProcessProviderEvent(task); err != nil {
				log.Printf("Error processing provider event %s: %v", task.EventId, err)
				d.Nack(false, true) // Requeue for retry
			} else {
				d.Ack(false)
			}
		}
	}()

	for d := range tasks {
		var task models.SweepTask
		if err := json.Unmarshal(d.Body, &task); err != nil {
			log.Printf("Dropping malformed task: %v", err)
			d.Ack(false)
			continue
		}
		if err := taskSvc.ProcessTask(task); err != nil {
			log.Printf("Error processing %s for workspace %d: %v", task.Job, task.WorkspaceID, err)
			d.Nack(false, true)
		} else {
			d.Ack(false)
		}
	}
}
