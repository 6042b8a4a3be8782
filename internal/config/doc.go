// Package config provides configuration parsing for the transitiongate CLI.
//
// The configuration is stored in transitiongate.json. Every field is
// optional; missing fields take the defaults from New.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "port": 3000,
//	    "host": "localhost"
//	  },
//	  "gate": {
//	    "enterClass": "fade-in",
//	    "exitClass": "fade-out",
//	    "exitDurationMs": 300,
//	    "wrap": false,
//	    "strict": false
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics"
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  },
//	  "scenario": "./demo.yaml"
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
