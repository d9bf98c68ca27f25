package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string]bool
	ips map[string]bool
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if f.mx[name] {
		return []*net.MX{{Host: "mx." + name}}, nil
	}
	return nil, errors.New("no mx")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if f.ips[host] {
		return []net.IPAddr{{IP: net.IPv4(10, 0, 0, 1)}}, nil
	}
	return nil, errors.New("no host")
}

func TestEmailDomainChecker(t *testing.T) {
	c := NewEmailDomainChecker(fakeResolver{
		mx:  map[string]bool{"garage.in": true},
		ips: map[string]bool{"bikes.io": true},
	})
	ctx := context.Background()

	assert.True(t, c.Valid(ctx, "owner@garage.in"))
	assert.True(t, c.Valid(ctx, "owner@bikes.io"))
	assert.False(t, c.Valid(ctx, "owner@nowhere.test"))
	assert.False(t, c.Valid(ctx, "owner@"))
	assert.False(t, c.Valid(ctx, "owner"))
}
