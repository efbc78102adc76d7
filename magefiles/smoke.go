package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/magefile/mage/mg"
)

// smokeCase is one invocation of the example extractor and the document it must produce.
type smokeCase struct {
	name  string
	args  []string
	stdin string
	want  string
}

var smokeCases = []smokeCase{
	{
		name: "discovery",
		args: []string{"--meta"},
		want: `{"name": "Python extract!", "types": ["Manifest"], "cacheKey": "behavior_python"}`,
	},
	{
		name:  "behavior present",
		stdin: `{"resource": {"behavior": "walk"}}`,
		want:  `{"meta": {"behavior_python": "walk"}, "caches": {"behavior_python": true}, "logs": ["Found behavior walk"]}`,
	},
	{
		name:  "behavior absent",
		stdin: `{"resource": {}}`,
		want:  `{"meta": {}, "caches": {"behavior_python": true}, "logs": []}`,
	},
}

// Smoke runs the built example extractor as a harness would and checks
// each document with extractor-kit validate.
func Smoke() error {
	mg.Deps(Build)

	extract := filepath.Join(binDir, "behavior-extract")
	kit := filepath.Join(binDir, "extractor-kit")

	for _, tc := range smokeCases {
		cmd := exec.Command(extract, tc.args...)
		cmd.Stdin = strings.NewReader(tc.stdin)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		got, err := cmd.Output()
		if err != nil {
			return fmt.Errorf("[smoke] %s: %w: %s", tc.name, err, stderr.String())
		}
		if stderr.Len() > 0 {
			return fmt.Errorf("[smoke] %s: unexpected stderr: %s", tc.name, stderr.String())
		}
		if err := sameJSON(got, []byte(tc.want)); err != nil {
			return fmt.Errorf("[smoke] %s: %w", tc.name, err)
		}

		validateArgs := []string{"validate"}
		if len(tc.args) > 0 {
			validateArgs = append(validateArgs, "--descriptor")
		}
		validate := exec.Command(kit, validateArgs...)
		validate.Stdin = bytes.NewReader(got)
		if out, err := validate.CombinedOutput(); err != nil {
			return fmt.Errorf("[smoke] %s: validate: %w: %s", tc.name, err, out)
		}
		fmt.Printf("[smoke] %s ok\n", tc.name)
	}
	return nil
}

func sameJSON(got, want []byte) error {
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		return fmt.Errorf("output is not JSON: %w", err)
	}
	if err := json.Unmarshal(want, &w); err != nil {
		return fmt.Errorf("expected document is not JSON: %w", err)
	}
	if !reflect.DeepEqual(g, w) {
		return fmt.Errorf("got %s, want %s", got, want)
	}
	return nil
}
