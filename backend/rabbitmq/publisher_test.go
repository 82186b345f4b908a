package rabbitmq

import (
	"encoding/json"
	"errors"
	"testing"

	"civicflow/backend/models"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishReport(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "civicflow", routingKey: "report.created"}

	err := p.PublishReport(&models.Report{
		Id:             9,
		Location:       "Hospital Area",
		Issue:          "Gas leak",
		Description:    "near entrance",
		SentimentScore: 2,
		PriorityScore:  100,
		Status:         models.StatusPending,
		Timestamp:      "09:15:00",
	})
	require.NoError(t, err)
	require.Len(t, ch.msgs, 1)

	assert.Equal(t, "civicflow", ch.exchange)
	assert.Equal(t, "report.created", ch.key)
	assert.Equal(t, "application/json", ch.msgs[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.msgs[0].DeliveryMode)

	var ev ReportEvent
	require.NoError(t, json.Unmarshal(ch.msgs[0].Body, &ev))
	assert.Equal(t, int64(9), ev.Id)
	assert.Equal(t, 100, ev.PriorityScore)
	assert.Equal(t, "Pending", ev.Status)
}

func TestPublishError(t *testing.T) {
	p := &Publisher{channel: &fakeChannel{err: errors.New("channel closed")}}
	assert.Error(t, p.PublishReport(&models.Report{}))
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch}
	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
