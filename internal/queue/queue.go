package queue

import (
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// EnqueueDelivery schedules a delivery task to fire at the post's scheduled
// time.
func EnqueueDelivery(asynqClient *asynq.Client, payload DeliverPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeDeliverPost, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.ProcessIn(delay))
	if err != nil {
		return err
	}

	log.Printf("Delivery task scheduled: %+v", payload)
	return nil
}
