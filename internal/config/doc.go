// Package config provides configuration parsing for termkit projects.
//
// The configuration is stored in termkit.json at the project root and
// located by walking up from the working directory.
//
// # Configuration File Structure
//
//	{
//	  "name": "myapp",
//	  "paths": {
//	    "components": "internal/tui",
//	    "ledger": ".termkit/ledger.json"
//	  },
//	  "registry": {
//	    "source": "http",
//	    "url": "https://registry.example.com"
//	  }
//	}
//
// Every key can be overridden from the environment by upper-casing it,
// replacing dots with underscores and prefixing TERMKIT_:
//
//	TERMKIT_REGISTRY_SOURCE=s3 TERMKIT_REGISTRY_BUCKET=widgets termkit update
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Components:", cfg.ComponentsPath())
package config
