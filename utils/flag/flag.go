/*
flag package sets up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic.
	For service dependent flags please define in their respective package.
*/
package flag

import "flag"

const (
	APIServer = "api_server"
	Seeder    = "seeder"
)

var (
	IsDevelopment bool
	ServiceName   string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "'api_server' or 'seeder'")
}

// ParseFlags must be called from main after all packages registered theirs.
func ParseFlags() {
	flag.Parse()
}
