package core

// Binder is the interface for any object that will create a binding for a bridge module
type Binder interface {
	Bind(outDir string) error
}
