package cli

import (
	"github.com/spf13/cobra"

	"fixturegen/internal/gen"
)

const (
	OutputFlagName  = "output"
	PackageFlagName = "package"
	DryRunFlagName  = "dry-run"
)

func newCatalogCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [patterns...]",
		Short: "Write a Go file listing the generatable types of packages",
		Long: `catalog loads the given packages and writes a Go source file declaring
Types, the reflect.Type of every generatable non-generic type, and
Constructors, their discovered constructor functions.`,
		Example: "fixturegen catalog -o ./internal/catalog fixturegen/store",
		RunE: func(cmd *cobra.Command, args []string) error {
			genCfg := a.cfg.GeneratorConfig()

			flags := cmd.Flags()
			if flags.Changed(OutputFlagName) {
				genCfg.OutputDir, _ = flags.GetString(OutputFlagName)
			}

			if flags.Changed(PackageFlagName) {
				genCfg.PackageName, _ = flags.GetString(PackageFlagName)
			}

			dryRun, err := flags.GetBool(DryRunFlagName)
			if err != nil {
				return err
			}

			graph, err := a.load(args)
			if err != nil {
				return err
			}

			file, err := gen.NewGenerator(genCfg).Generate(graph)
			if err != nil {
				return err
			}

			if dryRun {
				_, err = cmd.OutOrStdout().Write(file.Content)
				return err
			}

			if err := gen.WriteFiles([]gen.GeneratedFile{*file}, genCfg.OutputDir); err != nil {
				return err
			}

			a.logger.WithField("dir", genCfg.OutputDir).
				WithField("file", file.Filename).
				Info("catalog written")

			return nil
		},
	}

	cmd.Flags().StringP(OutputFlagName, "o", "", "output directory, overrides catalog.output")
	cmd.Flags().String(PackageFlagName, "", "package name of the catalog, overrides catalog.package")
	cmd.Flags().Bool(DryRunFlagName, false, "print the catalog instead of writing it")

	return cmd
}
