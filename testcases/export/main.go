// Command export writes the geometry test cases to JSON, so that other
// implementations can be checked against the same data.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geometry"
	"seehuhn.de/go/geometry/shapes"
	"seehuhn.de/go/geometry/testcases"
)

func main() {
	outFile := pflag.StringP("out", "o", filepath.Join("testdata", "testcases.json"), "output file")
	verbose := pflag.BoolP("verbose", "v", false, "log every test case")
	pflag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			logrus.WithFields(logrus.Fields{
				"name": jtc.Name,
				"op":   jtc.Op,
			}).Debug("exporting")
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		logrus.Fatal(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		logrus.Fatal(err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.WithFields(logrus.Fields{
		"file":  *outFile,
		"count": len(out.TestCases),
	}).Info("test cases written")
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Op        string        `json:"op"`
	Points    [][]float64   `json:"points,omitempty"`
	Matrix    []float64     `json:"matrix,omitempty"`
	Ratio     float64       `json:"ratio,omitempty"`
	Radius    float64       `json:"radius,omitempty"`
	Divisions int           `json:"divisions,omitempty"`
	Found     bool          `json:"found"`
	Want      [][]float64   `json:"want,omitempty"`
	Area      float64       `json:"area,omitempty"`
	Outline   []jsonSegment `json:"outline,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name: category + "_" + tc.Name,
	}

	switch op := tc.Op.(type) {
	case testcases.LineIntersection:
		jtc.Op = "line_intersection"
		jtc.Points = pointsToJSON(op.BaseA, op.DirA, op.BaseB, op.DirB)
		jtc.Found = op.Found
		if op.Found {
			jtc.Want = pointsToJSON(op.Want)
		}
	case testcases.SegmentIntersection:
		jtc.Op = "segment_intersection"
		jtc.Points = pointsToJSON(op.A0, op.A1, op.B0, op.B1)
		jtc.Found = op.Found
		if op.Found {
			jtc.Want = pointsToJSON(op.Want)
		}
	case testcases.SegmentPoint:
		jtc.Op = "segment_point"
		jtc.Points = pointsToJSON(op.Start, op.End)
		jtc.Ratio = op.Ratio
		jtc.Found = !op.Invalid
		if !op.Invalid {
			jtc.Want = pointsToJSON(op.Want)
		}
	case testcases.TransformPoint:
		jtc.Op = "transform_point"
		jtc.Matrix = op.M[:]
		jtc.Points = pointsToJSON(op.P)
		jtc.Found = true
		jtc.Want = pointsToJSON(op.Want)
	case testcases.PolygonArea:
		jtc.Op = "polygon_area"
		jtc.Points = pointsToJSON(op.Vertices...)
		jtc.Found = true
		jtc.Area = op.Area
		jtc.Want = pointsToJSON(op.Centroid)
		jtc.Outline = outlineToJSON(op.Vertices)
	case testcases.RectangleIntersection:
		jtc.Op = "rectangle_intersection"
		jtc.Points = rectsToJSON(op.A, op.B)
		jtc.Found = op.Found
		if op.Found {
			jtc.Want = rectsToJSON(op.Want)
		}
	case testcases.CirclePolygon:
		jtc.Op = "circle_polygon"
		jtc.Points = pointsToJSON(op.Center)
		jtc.Radius = op.Radius
		jtc.Divisions = op.Divisions
		jtc.Found = !op.Invalid
		jtc.Want = pointsToJSON(op.Want...)
	default:
		logrus.Fatalf("%s: unknown operation %T", jtc.Name, tc.Op)
	}
	return jtc
}

func pointsToJSON(pts ...vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}

// rectsToJSON represents each rectangle by its lower-left and upper-right
// corners.
func rectsToJSON(rects ...rect.Rect) [][]float64 {
	var res [][]float64
	for _, r := range rects {
		res = append(res, []float64{r.LLx, r.LLy}, []float64{r.URx, r.URy})
	}
	return res
}

// outlineToJSON converts the vertices to a polygon and returns its closed
// outline.
func outlineToJSON(vertices []vec.Vec2) []jsonSegment {
	pts := make([]geometry.Point2D, len(vertices))
	for i, v := range vertices {
		pts[i] = geometry.PointFromVec2(v)
	}
	poly, err := shapes.NewPolygon(pts)
	if err != nil {
		logrus.Fatal(err)
	}

	var segs []jsonSegment
	for cmd, pts := range poly.Path() {
		seg := jsonSegment{Pts: pointsToJSON(pts...)}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		segs = append(segs, seg)
	}
	return segs
}
