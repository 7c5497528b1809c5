package provider

import "github.com/heartmarshall/proximity-backend/pkg/geo"

// IPLocation is the approximate position an IP geolocation provider
// resolved for an address. Proxy covers VPN exits and open proxies; Hosting
// marks data-centre address space.
type IPLocation struct {
	IP          string    `json:"ip"`
	Point       geo.Point `json:"point"`
	Country     string    `json:"country,omitempty"`
	CountryCode string    `json:"country_code,omitempty"`
	Region      string    `json:"region,omitempty"`
	City        string    `json:"city,omitempty"`
	Proxy       bool      `json:"proxy,omitempty"`
	Hosting     bool      `json:"hosting,omitempty"`
}
