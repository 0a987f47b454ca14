package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilPublisherIsSafe(t *testing.T) {
	var p *NATSPublisher
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), SubjectStoreVerified, map[string]string{"id": "s"})
		p.Close()
	})
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	var p Publisher = r

	p.Publish(context.Background(), SubjectUserSuspended, "u1")
	p.Publish(context.Background(), SubjectStoreActivated, "s1")
	Discard{}.Publish(context.Background(), SubjectOrderCompleted, nil)

	assert.Equal(t, []string{SubjectUserSuspended, SubjectStoreActivated}, r.Subjects())
}
