package smtp

import (
	"net"
	"strconv"
)

// Config holds the mail submission endpoint configuration.
type Config struct {
	Host     string // submission server hostname
	Port     int    // 465 for implicit TLS, typically 587 with StartTLS
	Username string // account used for AUTH, usually the sender address
	Password string // account password or app-specific password
	StartTLS bool   // plaintext dial upgraded via STARTTLS instead of implicit TLS
}

// Addr returns the host:port dial address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
