package swift

import (
	"bufio"
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/jmp-0x7C0/swift-bridge/builtin"
	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/jmp-0x7C0/swift-bridge/model"
)

const FILE_EXTENSION = ".swift"

// Binder contains the data for generating a Swift binding
type Binder struct {
	mod         *model.Module
	classifier  builtin.Classifier
	transformer *Transformer
}

// NewBinder creates a new Binder for Swift
func NewBinder(mod *model.Module, classifier builtin.Classifier) core.Binder {
	return &Binder{
		mod:         mod,
		classifier:  classifier,
		transformer: NewTransformer(classifier),
	}
}

// Bind is the Swift implementation of Bind
func (b Binder) Bind(outDir string) error {
	src, err := b.Generate()
	if err != nil {
		return err
	}

	swiftFilePath := path.Join(outDir, b.mod.Name+FILE_EXTENSION)
	f, err := os.Create(swiftFilePath)
	if err != nil {
		return core.NewSystemErrorF("unable to create %s: %w", swiftFilePath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.Write(src); err != nil {
		return core.NewSystemErrorF("writing %s: %w", swiftFilePath, err)
	}
	if err := w.Flush(); err != nil {
		return core.NewSystemErrorF("writing %s: %w", swiftFilePath, err)
	}

	slog.Info("wrote swift binding", "module", b.mod.Name, "path", swiftFilePath, "functions", len(b.mod.Functions))
	return nil
}

// Generate renders the Swift source for the whole module
func (b Binder) Generate() ([]byte, error) {
	funcs, err := b.Funcs()
	if err != nil {
		return nil, err
	}

	data := TemplateData{
		Module:      b.mod.Name,
		OpaqueTypes: b.OpaqueTypes(),
	}

	extensions := map[string]*Extension{}
	for _, fun := range funcs {
		if fun.Owner() == "" {
			data.Funcs = append(data.Funcs, fun)
			continue
		}
		ext, ok := extensions[fun.Owner()]
		if !ok {
			ext = &Extension{Owner: fun.Owner()}
			extensions[fun.Owner()] = ext
			data.Extensions = append(data.Extensions, ext)
		}
		ext.Methods = append(ext.Methods, fun)
	}

	var buf bytes.Buffer
	if err := swiftTemplate.Execute(&buf, data); err != nil {
		return nil, core.NewSystemErrorF("executing swift template: %w", err)
	}
	return buf.Bytes(), nil
}

// Funcs renders every function of the module, one signature per goroutine. A signature
// that violates a precondition aborts the whole module with an error naming it.
func (b Binder) Funcs() ([]*Func, error) {
	funcs := make([]*Func, len(b.mod.Functions))
	errs := make([]error, len(b.mod.Functions))

	var wg sync.WaitGroup
	for i, fn := range b.mod.Functions {
		wg.Add(1)
		go func(i int, fn model.Function) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = core.NewSystemErrorF("binding %s: %w", fn.LinkName(), core.Recovered(r))
				}
			}()

			b.checkOwner(fn)
			funcs[i] = b.transformer.NewFunc(fn)
			slog.Debug("rendered function", "symbol", fn.LinkName(),
				"swift", b.transformer.Render(fn.Signature, fn.IsMethod()))
		}(i, fn)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return funcs, nil
}

// checkOwner panics unless a method's owner classifies as opaque
func (b Binder) checkOwner(fn model.Function) {
	if !fn.IsMethod() {
		return
	}
	owner := model.NewTypeRef(model.Value, fn.Owner)
	if b.classifier.Classify(owner).Kind != builtin.KindOpaque {
		panic(core.NewPreconditionError("%s is not an opaque type", fn.Owner))
	}
}

// OpaqueTypes returns the sorted names of the opaque types the module's signatures
// reference, method owners included
func (b Binder) OpaqueTypes() []string {
	set := hashset.New()
	addIfOpaque := func(t model.TypeRef) {
		if b.classifier.Classify(t).Kind == builtin.KindOpaque {
			set.Add(t.Base())
		}
	}

	for _, fn := range b.mod.Functions {
		if fn.IsMethod() {
			set.Add(fn.Owner)
		}
		for _, in := range fn.Signature.Inputs() {
			addIfOpaque(in.Type)
		}
		if fn.Signature.Returns != nil {
			addIfOpaque(*fn.Signature.Returns)
		}
	}

	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	sort.Strings(names)
	return names
}
