// Package config provides configuration parsing for routegen projects.
//
// The configuration is stored in routegen.json at the project root:
//
//	{
//	  "routes": "routes.json",
//	  "src": "routes",
//	  "output": "app/manifest",
//	  "dev": {
//	    "port": 10000,
//	    "host": "localhost",
//	    "reloadClient": "routegen/reload-client"
//	  },
//	  "publish": {
//	    "backend": "s3",
//	    "bucket": "my-app-manifests",
//	    "prefix": "builds/latest/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// Values can be overridden by ROUTEGEN_* environment variables, which may
// also come from a .env file next to routegen.json. Command-line flags are
// applied last by the CLI.
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.LoadEnv(); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Dev port:", cfg.Dev.Port)
package config
