package net

import (
	"fmt"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_beautify._tcp"

// DiscoverService browses the local network for a beautify server
// advertising itself over mDNS and returns its endpoint URL. Used when no
// -service flag is given, so a box on the LAN running the image generator
// needs no configuration at all.
func DiscoverService(timeout time.Duration) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)

	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- fmt.Sprintf("http://%s:%d/beautify", e.AddrV4.String(), e.Port):
			default:
			}
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	err := mdns.Query(params)
	close(entries)
	if err != nil {
		return "", fmt.Errorf("mdns lookup failed: %w", err)
	}

	select {
	case addr := <-found:
		return addr, nil
	default:
		return "", fmt.Errorf("no %s service found on the local network", serviceType)
	}
}
