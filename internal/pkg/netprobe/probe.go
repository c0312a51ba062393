package netprobe

import (
	"context"
	"net"
	"time"

	"github.com/piresc/routefinder/internal/pkg/logger"
)

// DefaultAddress is a well-known host:port expected to accept TCP connections
const DefaultAddress = "8.8.8.8:53"

// DialFunc opens a connection, matching net.Dialer.DialContext
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Prober checks whether the network is reachable at all
type Prober struct {
	Address string
	Dial    DialFunc
}

// NewProber creates a prober for address, falling back to DefaultAddress
func NewProber(address string) *Prober {
	if address == "" {
		address = DefaultAddress
	}
	return &Prober{
		Address: address,
		Dial:    (&net.Dialer{}).DialContext,
	}
}

// HasConnectivity makes a single TCP connection attempt bounded by timeout.
// Any error, including the timeout, reports false.
func (p *Prober) HasConnectivity(ctx context.Context, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dial := p.Dial
	if dial == nil {
		dial = (&net.Dialer{}).DialContext
	}

	conn, err := dial(ctx, "tcp", p.Address)
	if err != nil {
		logger.Debug("Connectivity probe failed",
			logger.String("address", p.Address),
			logger.Err(err))
		return false
	}
	conn.Close()
	return true
}
