package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmp-0x7C0/swift-bridge/bind"
	"github.com/jmp-0x7C0/swift-bridge/builtin"
	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/jmp-0x7C0/swift-bridge/model"
)

// Generator generates bindings in other languages for the functions of a bridge module
type Generator struct {
	ModulePath string
	OutDir     string
	Targets    []string
}

// NewGenerator constructs a new Generator instance
func NewGenerator(modulePath string, outDir string, targets []string) *Generator {
	return &Generator{
		ModulePath: modulePath,
		OutDir:     outDir,
		Targets:    targets,
	}
}

func createOutputDir(outDir string) (string, error) {
	err := os.MkdirAll(outDir, 0755)
	if err != nil {
		return "", core.NewSystemErrorF("Could not create output directory: %w", err)
	}

	outDir, err = filepath.Abs(outDir)
	if err != nil {
		return "", core.NewSystemErrorF("Could not infer absolute path to output directory: %w", err)
	}

	return outDir, nil
}

// Execute builds the target bindings
func (g Generator) Execute() error {
	mod, err := model.LoadModuleFile(g.ModulePath)
	if err != nil {
		return core.NewUserErrorF("Could not load module: %w", err)
	}

	outDir, err := createOutputDir(g.OutDir)
	if err != nil {
		return err
	}

	slog.Debug("loaded module", "module", mod.Name, "types", mod.Types, "functions", len(mod.Functions))

	classifier := builtin.NewCatalog(mod.Types...)
	for _, target := range g.Targets {
		binder, err := bind.NewBinder(mod, classifier, target)
		if err != nil {
			return err
		}
		if err := binder.Bind(outDir); err != nil {
			return err
		}
	}

	return nil
}
