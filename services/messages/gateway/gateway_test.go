package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/constants"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	subject string
	payload interface{}
	err     error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, subject string, v interface{}) error {
	p.subject, p.payload = subject, v
	return p.err
}

func TestPublishMessageSent(t *testing.T) {
	pub := &recordingPublisher{}
	m := metrics.NewMetrics(metrics.NewRegistry())
	gw := NewMessageGW(pub, m)
	event := &models.MessageEvent{MessageID: uuid.New(), Body: "hi"}

	assert.NoError(t, gw.PublishMessageSent(context.Background(), event))
	assert.Equal(t, constants.SubjectMessageSent, pub.subject)
	assert.Same(t, event, pub.payload)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(constants.SubjectMessageSent)))
}

func TestPublishMessageSent_Error(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("no responders")}
	gw := NewMessageGW(pub, nil)

	err := gw.PublishMessageSent(context.Background(), &models.MessageEvent{})
	assert.ErrorContains(t, err, "failed to publish message.sent")
}
