package main

import (
	"encoding/json"
	"log"
	"os"

	"denku.com/billing/handlers/telephony"
	"denku.com/billing/internal/concurrency"
	"denku.com/billing/internal/webhook"
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

	ariClient, err := utils.CreateARIConnection()
	if err != nil {
		log.Printf("ARI unavailable, rejected calls will not be hung up: %v", err)
		ariClient = nil
	}

	limiter := concurrency.NewService(lRepo, wRepo, aRepo)
	ingestionSvc := webhook.NewService(limiter, wRepo, telephony.NewARITelephonyHandler(db, ariClient))

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

	// Prefetch(1) ensures the worker doesn't hog all events if one is slow
	ch.Qos(1, 0, false)
	msgs, err := ch.Consume("call_events", "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	log.Println("Call-event worker ready. Waiting for events...")

	for d := range msgs {
		var event models.CallEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			log.Printf("Dropping malformed call event: %v", err)
			d.Ack(false)
			continue
		}

		err := ingestionSvc.ProcessCallEvent(&event)
		if err != nil {
			log.Printf("Error processing call %s: %v", event.CallId, err)
			d.Nack(false, true) // Requeue for retry
		} else {
			d.Ack(false)
		}
	}
}
