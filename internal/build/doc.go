// Package build runs the manifest pipeline for a routegen project.
//
// A build performs these steps:
//   - Load the route descriptor file named by routegen.json
//   - Validate the descriptors
//   - Write client.js and server.js to the output directory
//   - Optionally mirror both files to the configured bucket
//
// # Usage
//
//	builder := build.New(cfg, build.Options{Dev: true})
//	result, err := builder.Build(ctx)
//	if err != nil {
//	    errors.PrintError(err)
//	    os.Exit(1)
//	}
//
//	fmt.Printf("Generated %d routes in %s\n", result.Routes, result.Duration)
//
// Failures are returned as coded errors from internal/errors (E2xx for
// descriptors, E300 for local writes, E35x for publishing).
package build
