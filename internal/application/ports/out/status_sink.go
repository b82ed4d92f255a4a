package out

//go:generate mockgen -source=status_sink.go -destination=mocks/status_sink_mock.go -package=mocks

import "context"

// StatusSink receives rendered progress text. Delivery is best effort.
type StatusSink interface {
	OnUpdate(ctx context.Context, text string) error
}

type StatusSinkFactory interface {
	ForCallback(callbackURL string) StatusSink
}
