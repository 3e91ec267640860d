// Package registry provides the termkit component catalog.
//
// Components are Go source files that developers copy into their own
// projects and own completely. The registry only describes and serves them;
// tracking what was installed is the job of the ledger package.
//
// # Layout
//
// Every registry, whatever its transport, has the same layout:
//
//	manifest.json
//	components/<name>/<file>
//
// The manifest lists each component with its version and files:
//
//	{
//	  "manifestVersion": 1,
//	  "registry": "termkit",
//	  "components": {
//	    "spinner": {
//	      "version": "1.2.0",
//	      "files": ["spinner.go", "frames.go"],
//	      "dependencies": {"github.com/charmbracelet/lipgloss": "v1.1.0"}
//	    }
//	  }
//	}
//
// A manifest that does not start with '{' is read as YAML.
//
// # Sources
//
// A Source reads raw bytes. FSSource reads any fs.FS, including the catalog
// embedded in the binary. HTTPSource reads a registry served over HTTP, for
// example by NewHandler. S3Source reads a bucket.
//
// Registry turns a Source into a Provider, which is what the sync engine
// consumes. Memory is a Provider for tests.
package registry
