// Package main provides the covar CLI: evaluate covariance matrices from the
// command line.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/covar-ml/covar/backend/cpu"
	"github.com/covar-ml/covar/kernels"
	"github.com/covar-ml/covar/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCLI builds the covar command tree.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "covar",
		Short: "Positive-semidefinite kernel evaluation",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("covar %s\n", version)
		},
	}

	matrixCmd := &cobra.Command{
		Use:   "matrix x1.csv [x2.csv]",
		Short: "Evaluate an exponentiated-quadratic covariance matrix",
		Long: "Evaluate the exponentiated-quadratic kernel over all pairs of points.\n" +
			"Each CSV row is one point; columns are feature coordinates.\n" +
			"With a single file the Gram matrix k(x, x) is printed.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runMatrix,
	}
	matrixCmd.Flags().Float64("amplitude", 1, "kernel amplitude (omit for no scaling)")
	matrixCmd.Flags().Float64("length-scale", 1, "kernel length scale (omit for no rescaling)")
	matrixCmd.Flags().Bool("validate", false, "check parameter positivity before evaluating")
	matrixCmd.Flags().Int("feature-ndims", 1, "trailing input dimensions per feature vector")

	rootCmd.AddCommand(versionCmd, matrixCmd)
	return rootCmd
}

func runMatrix(cmd *cobra.Command, args []string) error {
	backend := cpu.New()

	x1, err := loadPoints(args[0], backend)
	if err != nil {
		return err
	}
	x2 := x1
	if len(args) == 2 {
		if x2, err = loadPoints(args[1], backend); err != nil {
			return err
		}
	}

	var amplitude, lengthScale *tensor.Tensor[float64, *cpu.Backend]
	if cmd.Flags().Changed("amplitude") {
		v, _ := cmd.Flags().GetFloat64("amplitude")
		amplitude = tensor.Scalar(v, backend)
	}
	if cmd.Flags().Changed("length-scale") {
		v, _ := cmd.Flags().GetFloat64("length-scale")
		lengthScale = tensor.Scalar(v, backend)
	}

	var opts []kernels.Option
	if validate, _ := cmd.Flags().GetBool("validate"); validate {
		opts = append(opts, kernels.WithValidateArgs())
	}
	if ndims, _ := cmd.Flags().GetInt("feature-ndims"); ndims != 1 {
		opts = append(opts, kernels.WithFeatureNdims(ndims))
	}

	k, err := kernels.NewExponentiatedQuadratic(amplitude, lengthScale, opts...)
	if err != nil {
		return err
	}

	m, err := k.Matrix(x1, x2)
	if err != nil {
		return err
	}

	printMatrix(m)
	return nil
}

// loadPoints reads one point per CSV row, all rows the same width.
func loadPoints(path string, backend *cpu.Backend) (*tensor.Tensor[float64, *cpu.Backend], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no points", path)
	}

	dim := len(records[0])
	data := make([]float64, 0, len(records)*dim)
	for i, record := range records {
		if len(record) != dim {
			return nil, fmt.Errorf("%s: row %d has %d columns, expected %d", path, i+1, len(record), dim)
		}
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
			}
			data = append(data, v)
		}
	}

	return tensor.FromSlice(data, tensor.Shape{len(records), dim}, backend)
}

func printMatrix(m *tensor.Tensor[float64, *cpu.Backend]) {
	shape := m.Shape()
	rows, cols := shape[0], shape[1]

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")

	header := make([]string, cols+1)
	for j := 0; j < cols; j++ {
		header[j+1] = fmt.Sprintf("x2[%d]", j)
	}
	table.SetHeader(header)

	for i := 0; i < rows; i++ {
		row := make([]string, cols+1)
		row[0] = fmt.Sprintf("x1[%d]", i)
		for j := 0; j < cols; j++ {
			row[j+1] = strconv.FormatFloat(m.At(i, j), 'f', 6, 64)
		}
		table.Append(row)
	}
	table.Render()
}
