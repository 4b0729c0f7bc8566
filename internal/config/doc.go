// Package config provides configuration parsing for Pulse projects.
//
// The configuration is stored in pulse.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-app",
//	  "server": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "allowedOrigins": ["https://example.com"]
//	  },
//	  "session": {
//	    "resumeWindow": "30s",
//	    "maxSessions": 10000
//	  },
//	  "assets": {
//	    "bucket": "my-app-assets",
//	    "region": "us-east-1"
//	  },
//	  "metrics": { "enabled": true },
//	  "tracing": { "enabled": true, "serviceName": "my-app" }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Addr())
package config
