package cli

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fixturegen/fixture"
	"fixturegen/internal/match"
	"fixturegen/store"
	"fixturegen/warehouse"
)

const (
	MaxDepthFlagName = "max-depth"
	SeedFlagName     = "seed"
	CountFlagName    = "count"
)

// sampleTypes are the types the sample command knows by name.
var sampleTypes = map[string]reflect.Type{
	"store.Product":           reflect.TypeFor[store.Product](),
	"store.Customer":          reflect.TypeFor[store.Customer](),
	"store.Order":             reflect.TypeFor[store.Order](),
	"store.OrderItem":         reflect.TypeFor[store.OrderItem](),
	"store.OrderStatus":       reflect.TypeFor[store.OrderStatus](),
	"store.Cart":              reflect.TypeFor[store.Cart](),
	"store.Catalog":           reflect.TypeFor[store.Catalog](),
	"store.Category":          reflect.TypeFor[store.Category](),
	"store.Parcel":            reflect.TypeFor[store.Parcel](),
	"warehouse.Address":       reflect.TypeFor[warehouse.Address](),
	"warehouse.Bin":           reflect.TypeFor[warehouse.Bin](),
	"warehouse.Stock":         reflect.TypeFor[warehouse.Stock](),
	"warehouse.Shipment":      reflect.TypeFor[warehouse.Shipment](),
	"warehouse.Line":          reflect.TypeFor[warehouse.Line](),
	"warehouse.ReturnRequest": reflect.TypeFor[warehouse.ReturnRequest](),
	"warehouse.Carrier":       reflect.TypeFor[warehouse.Carrier](),
}

// sampleOptions opt in the unmarked warehouse types and the parcel constructors.
func sampleOptions() []fixture.Option {
	return []fixture.Option{
		fixture.WithComposite(
			reflect.TypeFor[warehouse.Address](),
			reflect.TypeFor[warehouse.Bin](),
			reflect.TypeFor[warehouse.Stock](),
			reflect.TypeFor[warehouse.Shipment](),
			reflect.TypeFor[warehouse.Line](),
			reflect.TypeFor[warehouse.ReturnRequest](),
		),
		fixture.WithConstructors(store.NewParcel, store.NewEnvelope),
	}
}

// RegisterGenerationFlags adds the flags overriding the generation settings
// of the config file.
func RegisterGenerationFlags(flagset *pflag.FlagSet) {
	flagset.Int(MaxDepthFlagName, 0, "recursion bound, overrides max_depth")
	flagset.Uint64(SeedFlagName, 0, "random seed, overrides seed")
	flagset.Int(CountFlagName, 1, "number of values per type")
}

func newSampleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample [types...]",
		Short: "Print generated values of the built-in sample types",
		Long: fmt.Sprintf(`sample generates values of the store and warehouse sample domains and
dumps them. Without arguments every sample type is generated. A seeded run
generates values one after another and prints the same output every time;
an unseeded run generates them concurrently.

Known types:
  %v`, sampleNames()),
		Example:   "fixturegen sample --seed 42 --max-depth 3 store.Order",
		ValidArgs: sampleNames(),
		Args:      validSampleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyGenerationFlags(cmd.Flags()); err != nil {
				return err
			}

			count, err := cmd.Flags().GetInt(CountFlagName)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = sampleNames()
			}

			var types []reflect.Type
			for _, name := range args {
				for range count {
					types = append(types, sampleTypes[name])
				}
			}

			opts := append(sampleOptions(), fixture.WithLogger(a.logger))

			g, err := a.cfg.NewGenerator(opts...)
			if err != nil {
				return err
			}

			generate := fixture.GenerateAll
			if a.cfg.Seed != 0 {
				generate = fixture.GenerateInOrder
			}

			values, err := generate(cmd.Context(), g, types)
			if err != nil {
				return err
			}

			dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
			dumper.Fdump(cmd.OutOrStdout(), values...)

			return nil
		},
	}

	RegisterGenerationFlags(cmd.Flags())

	return cmd
}

func (a *app) applyGenerationFlags(flags *pflag.FlagSet) error {
	if flags.Changed(MaxDepthFlagName) {
		depth, err := flags.GetInt(MaxDepthFlagName)
		if err != nil {
			return err
		}

		a.cfg.MaxDepth = depth
	}

	if flags.Changed(SeedFlagName) {
		seed, err := flags.GetUint64(SeedFlagName)
		if err != nil {
			return err
		}

		a.cfg.Seed = seed
	}

	return a.cfg.Validate()
}

var ErrUnknownSampleType = errors.New("unknown sample type")

func validSampleArgs(_ *cobra.Command, args []string) error {
	for _, name := range args {
		if _, ok := sampleTypes[name]; ok {
			continue
		}

		suggestions := match.Names(match.Suggest(name, sampleNames(), match.DefaultMinScore, 3))
		if len(suggestions) == 0 {
			return fmt.Errorf("%w %q", ErrUnknownSampleType, name)
		}

		return fmt.Errorf("%w %q, did you mean %s?", ErrUnknownSampleType, name, strings.Join(suggestions, ", "))
	}

	return nil
}

func sampleNames() []string {
	names := make([]string, 0, len(sampleTypes))
	for name := range sampleTypes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
