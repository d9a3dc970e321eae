// Package extension provides the run-time registry of engine services. The
// dispatcher resolves every operation tag to a registered service method.
package extension
