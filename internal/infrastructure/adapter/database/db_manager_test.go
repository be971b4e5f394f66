package database

import (
	"errors"
	"testing"

	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
)

func TestConnectRetryable(t *testing.T) {
	classifier := repository.NewErrorClassifier()

	t.Run("Connectivity failures get another attempt", func(t *testing.T) {
		retryable := []error{
			errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			errors.New("read tcp 10.0.0.5:5432: connection reset by peer"),
			errors.New("dial tcp: lookup db.internal: no such host"),
			errors.New("context deadline exceeded: timeout"),
		}

		for _, err := range retryable {
			assert.True(t, connectRetryable(classifier, err), "expected retryable: %v", err)
		}
	})

	t.Run("Permanent failures fail fast", func(t *testing.T) {
		permanent := []error{
			errors.New(`pq: password authentication failed for user "fintrack"`),
			errors.New(`pq: database "fintrak" does not exist`),
			errors.New("cannot parse `host=... port=-1`: invalid port"),
		}

		for _, err := range permanent {
			assert.False(t, connectRetryable(classifier, err), "expected permanent: %v", err)
		}
	})
}
