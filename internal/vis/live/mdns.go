package live

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/mdns"
)

// ServiceName is the mDNS service type of the live view.
const ServiceName = "_kivavis._tcp"

// Announce advertises the live view on port via mDNS. The caller shuts the
// returned server down.
func Announce(port int) (*mdns.Server, error) {
	var ips []net.IP
	addrs, err := net.InterfaceAddrs()
	if err == nil {
		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
				ips = append(ips, ipnet.IP)
			}
		}
	}
	if len(ips) == 0 {
		ips, _ = net.LookupIP("localhost")
	}

	instance := instanceName()
	service, err := mdns.NewMDNSService(
		instance,
		ServiceName,
		"",
		"",
		port,
		ips,
		[]string{"path=/", "ws=/ws"},
	)
	if err != nil {
		return nil, fmt.Errorf("create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("start mDNS server: %w", err)
	}
	log.Printf("[INFO] mDNS: announcing %s on %s port %d", instance, ServiceName, port)
	return server, nil
}

// instanceName is unique per run so several viewers can share a network.
func instanceName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "kivavis"
	}
	return fmt.Sprintf("%s-%s", host, uuid.NewString()[:8])
}
