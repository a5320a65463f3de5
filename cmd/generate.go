package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/jmp-0x7C0/swift-bridge/bind"
	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/marstr/collection"
	"github.com/spf13/cobra"
)

const defaultTarget = "swift"

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate the binding for a bridge module",
		Long: `Given a bridge module description and a set of target languages
generate the binding for the module in each of the targets`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			requiredFlags := collection.AsEnumerable([]interface{}{targets, modulePath, outDir}...).Enumerate(nil)
			allGood := requiredFlags.All(func(a interface{}) bool {
				if t, ok := a.([]string); ok {
					return len(t) > 0
				}
				return len(a.(string)) > 0
			})
			if !allGood {
				return core.NewUserError("Please provide --targets, --outdir and --module")
			}

			var requested core.CollectionStringSlice = targets
			if !requested.Enumerate().All(func(t interface{}) bool { return bind.IsTarget(t.(string)) }) {
				return core.NewUserErrorF("unsupported target in %v, expected one of %v", targets, bind.Targets())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewGenerator(modulePath, outDir, targets).Execute()
		},
	}

	targets    []string
	modulePath string
	outDir     string
)

func init() {
	cwd, _ := os.Getwd()
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringSliceVarP(
		&targets,
		"targets",
		"t",
		[]string{defaultTarget},
		fmt.Sprintf("Targets for binding generation %s", bind.Targets()))

	generateCmd.Flags().StringVarP(
		&modulePath,
		"module",
		"m",
		"",
		"Path to the YAML description of the bridge module (example ffi.yaml)")

	generateCmd.Flags().StringVarP(
		&outDir,
		"outdir",
		"o",
		path.Join(cwd, "output"),
		"Output directory to drop generated binding")
}
