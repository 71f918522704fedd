package production

import (
	"github.com/comalice/fsmx"
)

// ChannelObserver forwards run events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelObserver struct {
	ch chan<- fsmx.Event
}

// NewChannelObserver creates a ChannelObserver with the given output channel.
func NewChannelObserver(ch chan<- fsmx.Event) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

func (o *ChannelObserver) Observe(e fsmx.Event) {
	select {
	case o.ch <- e:
	default: // Non-blocking drop
	}
}

func (o *ChannelObserver) Close() error {
	close(o.ch)
	return nil
}
