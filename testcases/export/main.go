// Command export writes the clip test case definitions to JSON, so that
// implementations of the same algorithm in other languages can be
// checked against the same data.
// Run from the polyclip module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/polyclip/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string     `json:"name"`
	Polygon [][2]int16 `json:"polygon"`
	Region  [4]int16   `json:"region"` // left, right, top, bottom
	Want    [][2]int16 `json:"want,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	j := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Polygon: toPairs(tc.Polygon),
		Region:  [4]int16{tc.Region.Left, tc.Region.Right, tc.Region.Top, tc.Region.Bottom},
	}
	if tc.Want != nil {
		j.Want = toPairs(tc.Want)
	}
	return j
}

func toPairs(poly []testcases.Vertex) [][2]int16 {
	pairs := make([][2]int16, len(poly))
	for i, p := range poly {
		pairs[i] = [2]int16{p.X, p.Y}
	}
	return pairs
}
