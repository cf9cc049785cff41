package config

import (
	"flag"
	"os"
	"time"

	"github.com/gamezone/gamezone/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   token signing secret
//	-t int      access token validity, minutes
//	-r string   Redis URL of the session cache
//	-l int      session cache TTL, seconds
//	-m string   metrics/health bind address ("" disables)
//	-p int      games per page
//	-k int      bcrypt cost
//	-f string   log format (json|text)
//	-single-session bool  accept only the latest token per account
//
// Only flags defined here are picked out of os.Args, so the JSON config flags
// (-c/-config) do not collide.
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "session cache redis url")
	sessionTTL := fs.Int("l", int(config.SessionTTL.Seconds()), "session cache ttl (in seconds)")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics and health address")
	fs.IntVar(&config.PageSize, "p", config.PageSize, "games per page")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text)")
	fs.BoolVar(&config.SingleSession, "single-session", config.SingleSession, "accept only the latest token of an account")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], flagx.Names(fs))); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.SessionTTL = time.Duration(*sessionTTL) * time.Second
}
