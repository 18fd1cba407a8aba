package model

//
// Network extensions
//

import (
	"context"
	"net"
)

// Dialer establishes network connections.
//
// The [*net.Dialer] type satisfies this interface.
type Dialer interface {
	// DialContext behaves like net.Dialer.DialContext.
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}
