// Command compute-area measures the first feature of a GeoJSON file on an
// ellipsoid and stores the result, in square kilometers, in its "area" property.
//
// Usage:
//
//	compute-area [--ellipsoid wgs84|grs80|sphere] <geojson_file> [output_file]
//
// The input file is overwritten when no output file is given.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/UnknownOlympus/geoarea/internal/area"
	"github.com/UnknownOlympus/geoarea/internal/boundary"
	"github.com/UnknownOlympus/geoarea/internal/geodesic"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = "Usage: compute-area [--ellipsoid name] <geojson_file> [output_file]"

var errUsage = errors.New(usage)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := computeArea(args, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func computeArea(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("compute-area", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.String("ellipsoid", "wgs84", "reference ellipsoid: wgs84, grs80 or sphere")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// An explicit flag wins over AREA_ELLIPSOID, which wins over the default.
	v := viper.New()
	if err := v.BindPFlag("ellipsoid", flags.Lookup("ellipsoid")); err != nil {
		return fmt.Errorf("failed to bind ellipsoid flag: %w", err)
	}
	if err := v.BindEnv("ellipsoid", "AREA_ELLIPSOID"); err != nil {
		return fmt.Errorf("failed to bind ellipsoid variable: %w", err)
	}

	positional := flags.Args()
	if len(positional) < 1 || len(positional) > 2 {
		return errUsage
	}
	input := positional[0]
	output := input
	if len(positional) == 2 {
		output = positional[1]
	}

	ellipsoid, err := geodesic.EllipsoidByName(v.GetString("ellipsoid"))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	km2, doc, err := boundary.Measure(area.NewEngine(ellipsoid), data)
	if err != nil {
		return err
	}

	encoded, err := doc.Encode()
	if err != nil {
		return err
	}

	if err = os.WriteFile(output, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	_, err = fmt.Fprintln(stdout, strconv.FormatFloat(km2, 'f', -1, 64))

	return err
}
