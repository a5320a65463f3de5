package model

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Module is the parsed content of one bridge module: the opaque types it
// declares and the functions that cross the boundary.
type Module struct {
	Name      string
	Types     []string
	Functions []Function
}

type yamlModule struct {
	Name      string         `yaml:"name"`
	Types     []string       `yaml:"types"`
	Functions []yamlFunction `yaml:"functions"`
}

type yamlFunction struct {
	Name    string      `yaml:"name"`
	Owner   string      `yaml:"owner"`
	Params  []yamlParam `yaml:"params"`
	Returns string      `yaml:"returns"`
}

type yamlParam struct {
	Receiver *string `yaml:"receiver"`
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
}

// LoadModuleFile reads a Module from the YAML file at path
func LoadModuleFile(path string) (*Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening module %s: %w", path, err)
	}
	defer f.Close()

	return LoadModule(f)
}

// LoadModule decodes a Module from YAML
func LoadModule(r io.Reader) (*Module, error) {
	var raw yamlModule
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding module: %w", err)
	}

	if raw.Name == "" {
		return nil, fmt.Errorf("module has no name")
	}

	mod := &Module{
		Name:  raw.Name,
		Types: raw.Types,
	}

	for _, fn := range raw.Functions {
		f, err := fn.toFunction()
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", fn.Name, err)
		}
		mod.Functions = append(mod.Functions, f)
	}

	return mod, nil
}

func (y yamlFunction) toFunction() (Function, error) {
	if y.Name == "" {
		return Function{}, fmt.Errorf("missing name")
	}

	params := make([]Param, len(y.Params))
	for i, p := range y.Params {
		param, err := p.toParam()
		if err != nil {
			return Function{}, fmt.Errorf("param %d: %w", i, err)
		}
		params[i] = param
	}

	sig := NewSignature(params...)
	if y.Returns != "" {
		ret, err := ParseTypeRef(y.Returns)
		if err != nil {
			return Function{}, fmt.Errorf("return: %w", err)
		}
		sig = sig.WithReturn(ret)
	}

	return Function{
		Name:      y.Name,
		Owner:     y.Owner,
		Signature: sig,
	}, nil
}

func (y yamlParam) toParam() (Param, error) {
	if y.Receiver != nil {
		if y.Name != "" || y.Type != "" {
			return nil, fmt.Errorf("receiver cannot also carry a name or type")
		}
		form, err := ParseQualifier(*y.Receiver)
		if err != nil {
			return nil, err
		}
		return Receiver{Form: form}, nil
	}

	if y.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	typ, err := ParseTypeRef(y.Type)
	if err != nil {
		return nil, err
	}
	return Named{Name: y.Name, Type: typ}, nil
}

// Methods returns the functions owned by the named opaque type
func (m Module) Methods(owner string) []Function {
	var methods []Function
	for _, f := range m.Functions {
		if f.Owner == owner {
			methods = append(methods, f)
		}
	}
	return methods
}
