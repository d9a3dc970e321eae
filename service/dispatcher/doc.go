// Package dispatcher turns an operation tag plus a process snapshot into a
// model.Envelope. It validates the input for the operation's family, resolves
// the engine action from the extension registry, invokes it and attaches the
// label and aggregate metrics. Every run is traced, counted, logged and
// published as an event.
package dispatcher
