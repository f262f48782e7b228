package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got PurchaseCompleted
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.UserID != "u1" || got.Total != "34.78" {
			return fmt.Errorf("unexpected payload %s", val)
		}
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	k := NewKafkaWithProducer(producer)
	require.NoError(t, k.Publish(context.Background(), PurchaseCompleted{
		PurchaseID: 7,
		UserID:     "u1",
		ProductIDs: []uint{1, 2},
		Total:      "34.78",
		Method:     "Credit",
	}))

	err := k.Publish(context.Background(), LibraryRefunded{UserID: "u1", ProductID: 1})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	require.NoError(t, k.Close())
}
