package metrics

import (
	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/notify"
	"github.com/polkiloo/suitopia/internal/usecase"
)

// Module provides the collectors and exposes them to the order and
// notification packages.
var Module = fx.Provide(
	New,
	func(m *Metrics) usecase.StatusObserver { return m },
	func(m *Metrics) notify.Observer { return m },
)
