package publish

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"geoconv-service/internal/ports"
)

var _ ports.FixPublisher = (*MQTTPublisher)(nil)

func TestNewMQTTPublisherFailures(t *testing.T) {
	_, err := NewMQTTPublisher("", "geoconv-test", time.Second)
	assert.Error(t, err)

	// nothing listens on port 1
	_, err = NewMQTTPublisher("tcp://127.0.0.1:1", "geoconv-test", 2*time.Second)
	assert.Error(t, err)
}
