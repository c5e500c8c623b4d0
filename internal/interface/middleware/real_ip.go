package middleware

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
)

const realIPKey = "real_ip"

// ParseTrustedProxies accepts CIDRs and bare addresses.
func ParseTrustedProxies(list []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(list))
	for _, s := range list {
		if strings.Contains(s, "/") {
			p, err := netip.ParsePrefix(s)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", s, err)
			}
			out = append(out, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(s)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", s, err)
		}
		out = append(out, netip.PrefixFrom(a.Unmap(), a.Unmap().BitLen()))
	}
	return out, nil
}

// RealIP stores the client address under "real_ip". Forwarding headers are
// read only when the direct peer is one of trusted; otherwise the peer
// address is the client.
func RealIP(trusted []netip.Prefix) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(realIPKey, resolveIP(c, trusted))
		c.Next()
	}
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	a, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	a = a.Unmap()
	for _, p := range trusted {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

func resolveIP(c *gin.Context, trusted []netip.Prefix) string {
	peer := c.RemoteIP()
	if !isTrusted(peer, trusted) {
		return peer
	}
	if a, err := netip.ParseAddr(strings.TrimSpace(c.GetHeader("CF-Connecting-IP"))); err == nil {
		return a.Unmap().String()
	}
	// walk X-Forwarded-For from the right; the first hop we do not trust is the client
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			a, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				break
			}
			if !isTrusted(a.String(), trusted) || i == 0 {
				return a.Unmap().String()
			}
		}
	}
	return peer
}

func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(realIPKey); ip != "" {
		return ip
	}
	if ip := c.RemoteIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// AllowPrivateIP bypasses loopback and RFC 1918 clients.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		a, err := netip.ParseAddr(ipFromCtx(c))
		return err == nil && (a.IsLoopback() || a.IsPrivate())
	}
}

// OnlyPrivateIP rejects requests from public addresses with 404.
func OnlyPrivateIP() gin.HandlerFunc {
	allow := AllowPrivateIP()
	return func(c *gin.Context) {
		if !allow(c) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Next()
	}
}
