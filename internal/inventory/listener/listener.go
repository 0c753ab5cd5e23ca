// Package listener consumes OrderCreated events from other sales channels
// (web shop, marketplace) and applies their stock deductions. Terminal sales
// are decremented inside the checkout transaction and are skipped here.
package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/event"
	"github.com/fekuna/omnipos-terminal-service/internal/inventory"
	"github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/pkg/broker"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type InventoryListener struct {
	consumer *broker.KafkaConsumer
	uc       inventory.UseCase
	logger   logger.ZapLogger
}

func NewInventoryListener(consumer *broker.KafkaConsumer, uc inventory.UseCase, logger logger.ZapLogger) *InventoryListener {
	return &InventoryListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *InventoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting inventory Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping inventory Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *InventoryListener) processMessage(ctx context.Context, value []byte) {
	var evt event.OrderCreated
	if err := json.Unmarshal(value, &evt); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if evt.EventType != event.TypeOrderCreated {
		return
	}
	if evt.Source == event.SourceTerminal {
		// Our own sale; stock already moved in the checkout transaction.
		return
	}

	l.logger.Info("Processing OrderCreated event", zap.String("order_id", evt.Payload.ID))

	for _, item := range evt.Payload.Items {
		input := &dto.AdjustInventoryInput{
			ProductID:      item.ProductID,
			LocationID:     evt.Payload.LocationID,
			SizeName:       item.SizeName,
			QuantityChange: -item.Quantity,
			Reason:         "Order Sale",
			ReferenceID:    evt.Payload.ID,
			ReferenceType:  "sale",
			UserID:         "system",
		}

		if _, err := l.uc.AdjustInventory(ctx, input); err != nil {
			l.logger.Error("Failed to adjust inventory for order item",
				zap.String("order_id", evt.Payload.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
