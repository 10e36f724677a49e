package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sse-mib/instviz/config"
	"github.com/sse-mib/instviz/errors"
	"github.com/sse-mib/instviz/server"
)

// DataCmd inspects the reading dataset
var DataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect and validate the reading dataset",
	Long: `Inspect the reading dataset without starting the server.

Examples:
  instviz data ls       # List readings with section and author
  instviz data axes     # List registered axes
  instviz data check    # Validate both dataset files`,
}

var dataLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List readings in the catalog",
	RunE:  runDataLs,
}

var dataAxesCmd = &cobra.Command{
	Use:   "axes",
	Short: "List registered axes",
	RunE:  runDataAxes,
}

var dataCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the dataset files",
	Long:  "Load and validate both dataset files, reporting the first problem found",
	RunE:  runDataCheck,
}

func init() {
	DataCmd.AddCommand(dataLsCmd)
	DataCmd.AddCommand(dataAxesCmd)
	DataCmd.AddCommand(dataCheckCmd)
}

func loadDatasetFromConfig() (*server.Dataset, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	ds, err := server.LoadDataset(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dataset")
	}
	return ds, nil
}

func runDataLs(cmd *cobra.Command, args []string) error {
	ds, err := loadDatasetFromConfig()
	if err != nil {
		return err
	}

	rows := pterm.TableData{{"Reading", "Author", "Section", "Category"}}
	for _, r := range ds.Catalog.All() {
		rows = append(rows, []string{r.Title, r.Author, r.Section, r.Category})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	fmt.Printf("\n%d readings, %d sections, %d authors\n",
		ds.Catalog.Len(), len(ds.Catalog.Sections()), len(ds.Catalog.Authors()))
	return nil
}

func runDataAxes(cmd *cobra.Command, args []string) error {
	ds, err := loadDatasetFromConfig()
	if err != nil {
		return err
	}

	defaults := ds.Registry.DefaultSelection()
	rows := pterm.TableData{{"ID", "Name", "Scale", "Range", "Default"}}
	for _, axis := range ds.Registry.Axes() {
		scale := fmt.Sprintf("%s → %s", axis.MinLabel, axis.MaxLabel)
		slot := ""
		switch axis.ID {
		case defaults.X:
			slot = "x"
		case defaults.Y:
			slot = "y"
		case defaults.Z:
			slot = "z"
		}
		rows = append(rows, []string{axis.ID, axis.Name, scale, "1-" + strconv.Itoa(axis.MaxValue), slot})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func runDataCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	ds, err := server.LoadDataset(cfg)
	if err != nil {
		pterm.Error.Printf("Dataset invalid: %v\n", err)
		return err
	}

	pterm.Success.Printf("Dataset valid: %d axes, %d readings\n", ds.Registry.Len(), ds.Catalog.Len())
	return nil
}
