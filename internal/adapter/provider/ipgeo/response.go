package ipgeo

// apiResponse is the ip-api.com JSON body. On failure only Status, Message
// and Query are set.
type apiResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Proxy       bool    `json:"proxy"`
	Hosting     bool    `json:"hosting"`
	Query       string  `json:"query"`
}

const (
	statusSuccess = "success"

	// fields limits the response to what the adapter maps.
	fields = "status,message,country,countryCode,regionName,city,lat,lon,proxy,hosting,query"
)
