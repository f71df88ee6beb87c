package node

import (
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Set at build time through -ldflags.
var (
	Version    = "development"
	CommitHash = "unknown"
)

// Node identifies the running server instance.
type Node struct {
	ID         string
	Hostname   string
	IPAddress  string
	Version    string
	CommitHash string
}

var (
	current     *Node
	currentOnce sync.Once
)

func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		current = &Node{
			ID:         uuid.NewString(),
			Hostname:   hostname,
			IPAddress:  firstPrivateAddress(),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})
	return current
}

// LogValue lets a Node be logged as a group.
func (n *Node) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", n.ID),
		slog.String("hostname", n.Hostname),
		slog.String("ip", n.IPAddress),
		slog.String("version", n.Version),
		slog.String("commit", n.CommitHash),
	)
}

func firstPrivateAddress() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "127.0.0.1"
}
