package config

import (
	"flag"
	"fmt"
)

// parseFlags понимает только то, что удобно переопределять при запуске.
//
//	-d    database URL
//	-port listen port
//	-static built frontend directory
//	-uploads resume upload directory
func parseFlags(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.Port, "port", "", "HTTP listen port")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory with the built frontend")
	fs.StringVar(&cfg.Uploads.Dir, "uploads", "", "Resume upload directory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, nil
}
