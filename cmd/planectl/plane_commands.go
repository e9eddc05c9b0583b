package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	geomath "github.com/oxygene76/boundedplane/pkg/geometry/math"
	"github.com/oxygene76/boundedplane/pkg/geometry/plane"
	"github.com/oxygene76/boundedplane/pkg/utils"
)

// demoCmd reproduces the sample session: a 5x5 plane at (0,0,1) spanned by
// the global X and Y axes and the local point (10,1,2).
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Transform a sample point with the demonstration plane",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plane.New(
				geomath.Point3{X: 0, Y: 0, Z: 1},
				geomath.Vector3{X: 1, Y: 0, Z: 0},
				geomath.Vector3{X: 0, Y: 1, Z: 0},
				plane.RectangularBounds{Width: 5, Height: 5},
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			localPt := geomath.Point3{X: 10, Y: 1, Z: 2}
			fmt.Fprintf(out, "local point on plane %s\n", localPt)
			fmt.Fprintf(out, "Point lies inside the bounds of plane? %t\n", p.IsInside(localPt))

			globalPt := p.LocalToGlobal(localPt)
			fmt.Fprintf(out, "local point transformed to global point %s\n", globalPt)
			fmt.Fprintf(out, "global point transformed back to local point %s\n", p.GlobalToLocal(globalPt))
			return nil
		},
	}
}

func toGlobalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-global x y z",
		Short: "Convert a local point to global coordinates",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, pt, err := configuredPlane(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p.LocalToGlobal(pt))
			return nil
		},
	}
}

func toLocalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-local x y z",
		Short: "Convert a global point to the plane's local coordinates",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, pt, err := configuredPlane(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p.GlobalToLocal(pt))
			return nil
		},
	}
}

func insideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inside x y z",
		Short: "Check whether a global point lies on the plane within its bounds",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, pt, err := configuredPlane(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p.IsInside(pt))
			return nil
		},
	}
}

func configuredPlane(args []string) (*plane.Plane, geomath.Point3, error) {
	pt, err := parsePoint(args)
	if err != nil {
		return nil, geomath.Point3{}, err
	}

	p, err := config.Plane.Build()
	if err != nil {
		logger.Error("failed to construct plane", append(utils.PlaneFields(config.Plane), zap.Error(err))...)
		return nil, geomath.Point3{}, err
	}

	logger.Debug("plane constructed",
		zap.Stringer("center", p.Center()),
		zap.Stringer("normal", p.Normal()),
	)
	return p, pt, nil
}

func parsePoint(args []string) (geomath.Point3, error) {
	var coords [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return geomath.Point3{}, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		coords[i] = v
	}
	return geomath.Point3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
