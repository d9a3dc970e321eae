package types

// Service is an engine exposing one method per operation tag
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
