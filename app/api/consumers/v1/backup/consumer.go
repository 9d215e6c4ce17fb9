package backup

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/assistant-api/business/v1/backup"
	"github.com/ribgsilva/assistant-api/platform/web/mid"
	"github.com/ribgsilva/assistant-api/sys"
	"gocloud.dev/pubsub"
)

// Consume applies backup events from the subscription until ctx is cancelled
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %d bytes", len(m.Body))
			if err := Apply(ctx, m.Body); err != nil {
				logger.Error("failed to apply backup event: ", err)
			}
		}(message)
	}

	// wait for in flight messages
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Apply decodes one backup event and stores its content
func Apply(ctx context.Context, body []byte) error {
	var e struct {
		Type string          `json:"type"`
		User string          `json:"user"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return errors.New("failed to parse body: " + err.Error())
	}
	// the api only ever reads the default user
	if e.User != "" && e.User != mid.DefaultUser {
		return errors.New("unsupported user: " + e.User)
	}

	switch e.Type {
	case backup.EventNotes:
		var notes []backup.NewNote
		if err := json.Unmarshal(e.Data, &notes); err != nil {
			return errors.New("failed to parse notes: " + err.Error())
		}
		_, err := backup.Notes(ctx, mid.DefaultUser, notes)
		return err
	case backup.EventTasks:
		var tasks []backup.NewTask
		if err := json.Unmarshal(e.Data, &tasks); err != nil {
			return errors.New("failed to parse tasks: " + err.Error())
		}
		_, err := backup.Tasks(ctx, mid.DefaultUser, tasks)
		return err
	default:
		return errors.New("unknown event type: " + e.Type)
	}
}
