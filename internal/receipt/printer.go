package receipt

import (
	"context"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

// Printer delivers a formatted receipt to an output device. Fire-and-forget
// from the checkout's perspective.
type Printer interface {
	Print(ctx context.Context, doc Document) error
}

// LogPrinter writes the rendered receipt to the service log. Stands in for
// a print spooler when no hardware is attached.
type LogPrinter struct {
	Logger logger.ZapLogger
}

func (p *LogPrinter) Print(_ context.Context, doc Document) error {
	p.Logger.Info("receipt",
		zap.String("order_id", doc.OrderID),
		zap.String("body", Render(doc)),
	)
	return nil
}
